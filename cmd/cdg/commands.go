package main

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cdg-go/cdg/api"
	"github.com/cdg-go/cdg/api/bill"
	"github.com/cdg-go/cdg/api/congress"
	"github.com/cdg-go/cdg/api/law"
	"github.com/cdg-go/cdg/api/member"
	"github.com/cdg-go/cdg/api/summaries"
)

// Window is shared by the bill and summary listings.
type Window struct {
	Congress int       `help:"Restrict to one congress." short:"c"`
	Type     string    `help:"Restrict to one bill type: hr, s, hjres, sjres, hconres, sconres, hres or sres. Requires --congress." short:"t"`
	From     time.Time `help:"Only items updated at or after this RFC 3339 time."`
	To       time.Time `help:"Only items updated before this RFC 3339 time."`
	Sort     string    `help:"Order by update date: asc or desc."`
}

func (w Window) check() error {
	if w.Type != "" && w.Congress <= 0 {
		return errors.New("--type requires --congress")
	}
	return nil
}

type windowable[B any] interface {
	FromDateTime(time.Time) B
	ToDateTime(time.Time) B
	Sort(api.Sort) B
}

func windowed[B windowable[B]](w Window, b B) B {
	if !w.From.IsZero() {
		b.FromDateTime(w.From)
	}
	if !w.To.IsZero() {
		b.ToDateTime(w.To)
	}
	if w.Sort != "" {
		b.Sort(api.Sort(strings.ToLower(w.Sort)))
	}
	return b
}

type BillsCmd struct {
	Window
}

func (c *BillsCmd) Run(e *env) error {
	if err := c.check(); err != nil {
		return err
	}
	switch {
	case c.Type != "":
		b := bill.NewByTypeBuilder().Congress(c.Congress).BillType(api.BillType(c.Type))
		return run(e, windowed(c.Window, paged(e, b)).Build)
	case c.Congress > 0:
		b := bill.NewByCongressBuilder().Congress(c.Congress)
		return run(e, windowed(c.Window, paged(e, b)).Build)
	default:
		return run(e, windowed(c.Window, paged(e, bill.NewListBuilder())).Build)
	}
}

type SummariesCmd struct {
	Window
}

func (c *SummariesCmd) Run(e *env) error {
	if err := c.check(); err != nil {
		return err
	}
	switch {
	case c.Type != "":
		b := summaries.NewByTypeBuilder().Congress(c.Congress).BillType(api.BillType(c.Type))
		return run(e, windowed(c.Window, paged(e, b)).Build)
	case c.Congress > 0:
		b := summaries.NewByCongressBuilder().Congress(c.Congress)
		return run(e, windowed(c.Window, paged(e, b)).Build)
	default:
		return run(e, windowed(c.Window, paged(e, summaries.NewListBuilder())).Build)
	}
}

type BillCmd struct {
	Congress int    `arg:"" help:"Congress number."`
	Type     string `arg:"" help:"Bill type."`
	Number   int    `arg:"" help:"Bill number."`
	Part     string `help:"Sub-resource: actions, amendments, committees, cosponsors, relatedbills, subjects, summaries, text or titles." short:"p"`
}

func (c *BillCmd) Run(e *env) error {
	bt := api.BillType(strings.ToLower(c.Type))

	switch strings.ToLower(c.Part) {
	case "":
		b := bill.NewBillBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, formatted(e, b).Build)
	case "actions":
		b := bill.NewActionsBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "amendments":
		b := bill.NewAmendmentsBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "committees":
		b := bill.NewCommitteesBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "cosponsors":
		b := bill.NewCosponsorsBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "relatedbills":
		b := bill.NewRelatedBillsBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "subjects":
		b := bill.NewSubjectsBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "summaries":
		b := bill.NewSummariesBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "text":
		b := bill.NewTextBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	case "titles":
		b := bill.NewTitlesBuilder().Congress(c.Congress).BillType(bt).BillNumber(c.Number)
		return run(e, paged(e, b).Build)
	}
	return fmt.Errorf("unknown bill part %q", c.Part)
}

type MemberCmd struct {
	BioguideID  string `arg:"" name:"bioguide-id" help:"Bioguide identifier, for example L000174."`
	Sponsored   bool   `help:"List legislation sponsored by the member." xor:"legislation"`
	Cosponsored bool   `help:"List legislation cosponsored by the member." xor:"legislation"`
}

func (c *MemberCmd) Run(e *env) error {
	switch {
	case c.Sponsored:
		b := member.NewSponsoredLegislationBuilder().BioguideID(c.BioguideID)
		return run(e, paged(e, b).Build)
	case c.Cosponsored:
		b := member.NewCosponsoredLegislationBuilder().BioguideID(c.BioguideID)
		return run(e, paged(e, b).Build)
	}
	return run(e, formatted(e, member.NewMemberBuilder().BioguideID(c.BioguideID)).Build)
}

type MembersCmd struct {
	Congress int    `help:"Restrict to members of one congress." short:"c"`
	State    string `help:"Two-letter state code." short:"s"`
	District int    `help:"Congressional district; 0 is at-large. Requires --state." default:"-1" short:"d"`
	Current  bool   `help:"Only members currently serving."`
}

func (c *MembersCmd) Run(e *env) error {
	if c.District >= 0 && c.State == "" {
		return errors.New("--district requires --state")
	}
	state := api.StateCode(strings.ToUpper(c.State))

	switch {
	case c.State != "" && c.District >= 0 && c.Congress > 0:
		b := member.NewByCongressStateDistrictBuilder().Congress(c.Congress).StateCode(state).District(c.District)
		if c.Current {
			b.CurrentMember(true)
		}
		return run(e, formatted(e, b).Build)
	case c.State != "" && c.District >= 0:
		b := member.NewByStateDistrictBuilder().StateCode(state).District(c.District)
		if c.Current {
			b.CurrentMember(true)
		}
		return run(e, formatted(e, b).Build)
	case c.State != "":
		if c.Congress > 0 {
			return errors.New("--congress with --state also needs --district")
		}
		b := member.NewByStateBuilder().StateCode(state)
		if c.Current {
			b.CurrentMember(true)
		}
		return run(e, formatted(e, b).Build)
	case c.Congress > 0:
		b := member.NewByCongressBuilder().Congress(c.Congress)
		if c.Current {
			b.CurrentMember(true)
		}
		return run(e, paged(e, b).Build)
	}

	b := member.NewListBuilder()
	if c.Current {
		b.CurrentMember(true)
	}
	return run(e, paged(e, b).Build)
}

type CongressCmd struct {
	Number int  `arg:"" optional:"" help:"Congress number; omit for the current congress."`
	List   bool `help:"List all congresses instead."`
}

func (c *CongressCmd) Run(e *env) error {
	switch {
	case c.List:
		return run(e, paged(e, congress.NewListBuilder()).Build)
	case c.Number > 0:
		return run(e, formatted(e, congress.NewCongressBuilder().Congress(c.Number)).Build)
	}
	return run(e, formatted(e, congress.NewCurrentBuilder()).Build)
}

type LawCmd struct {
	Congress int    `arg:"" help:"Congress number."`
	Number   int    `arg:"" optional:"" help:"Law number; omit to list the congress's laws."`
	Type     string `help:"Law type: pub or priv." default:"pub" short:"t"`
}

func (c *LawCmd) Run(e *env) error {
	lt := api.LawType(strings.ToLower(c.Type))
	if c.Number > 0 {
		b := law.NewLawBuilder().Congress(c.Congress).LawType(lt).LawNumber(c.Number)
		return run(e, formatted(e, b).Build)
	}
	return run(e, paged(e, law.NewByTypeBuilder().Congress(c.Congress).LawType(lt)).Build)
}
