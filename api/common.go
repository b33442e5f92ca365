package api

// Format selects the response encoding. The zero value is treated as JSON.
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

func (f Format) Valid() bool {
	switch f {
	case "", FormatJSON, FormatXML:
		return true
	}
	return false
}

// AsValue returns the wire form of the format.
func (f Format) AsValue() string {
	if f == "" {
		return string(FormatJSON)
	}
	return string(f)
}

func (f Format) String() string { return f.AsValue() }

// Sort orders list responses by update date.
type Sort string

const (
	SortAsc  Sort = "asc"
	SortDesc Sort = "desc"
)

func (s Sort) Valid() bool {
	switch s {
	case SortAsc, SortDesc:
		return true
	}
	return false
}

func (s Sort) AsValue() string { return string(s) }
func (s Sort) String() string  { return string(s) }

// BillType is the congressional bill or resolution type.
type BillType string

const (
	BillTypeHR      BillType = "hr"      // H.R.
	BillTypeS       BillType = "s"       // S.
	BillTypeHJRes   BillType = "hjres"   // H.J.Res.
	BillTypeSJRes   BillType = "sjres"   // S.J.Res.
	BillTypeHConRes BillType = "hconres" // H.Con.Res.
	BillTypeSConRes BillType = "sconres" // S.Con.Res.
	BillTypeHRes    BillType = "hres"    // H.Res.
	BillTypeSRes    BillType = "sres"    // S.Res.
)

func (b BillType) Valid() bool {
	switch b {
	case BillTypeHR, BillTypeS, BillTypeHJRes, BillTypeSJRes,
		BillTypeHConRes, BillTypeSConRes, BillTypeHRes, BillTypeSRes:
		return true
	}
	return false
}

func (b BillType) AsValue() string { return string(b) }
func (b BillType) String() string  { return string(b) }

// AmendmentType is the amendment type.
type AmendmentType string

const (
	AmendmentTypeHAmdt  AmendmentType = "hamdt"
	AmendmentTypeSAmdt  AmendmentType = "samdt"
	AmendmentTypeSUAmdt AmendmentType = "suamdt"
)

func (a AmendmentType) Valid() bool {
	switch a {
	case AmendmentTypeHAmdt, AmendmentTypeSAmdt, AmendmentTypeSUAmdt:
		return true
	}
	return false
}

func (a AmendmentType) AsValue() string { return string(a) }
func (a AmendmentType) String() string  { return string(a) }

// LawType distinguishes public and private laws.
type LawType string

const (
	LawTypePublic  LawType = "pub"
	LawTypePrivate LawType = "priv"
)

func (l LawType) Valid() bool {
	switch l {
	case LawTypePublic, LawTypePrivate:
		return true
	}
	return false
}

func (l LawType) AsValue() string { return string(l) }
func (l LawType) String() string  { return string(l) }

// Chamber is used by the committee, committee meeting, hearing and
// committee print resources.
type Chamber string

const (
	ChamberHouse  Chamber = "house"
	ChamberSenate Chamber = "senate"
	ChamberJoint  Chamber = "joint"
)

func (c Chamber) Valid() bool {
	switch c {
	case ChamberHouse, ChamberSenate, ChamberJoint:
		return true
	}
	return false
}

func (c Chamber) AsValue() string { return string(c) }
func (c Chamber) String() string  { return string(c) }

// CommitteeChamber differs from Chamber by the nochamber variant and the
// lack of joint.
type CommitteeChamber string

const (
	CommitteeChamberHouse     CommitteeChamber = "house"
	CommitteeChamberSenate    CommitteeChamber = "senate"
	CommitteeChamberNoChamber CommitteeChamber = "nochamber"
)

func (c CommitteeChamber) Valid() bool {
	switch c {
	case CommitteeChamberHouse, CommitteeChamberSenate, CommitteeChamberNoChamber:
		return true
	}
	return false
}

func (c CommitteeChamber) AsValue() string { return string(c) }
func (c CommitteeChamber) String() string  { return string(c) }

// ReportType is the committee report type.
type ReportType string

const (
	ReportTypeHRpt ReportType = "hrpt"
	ReportTypeSRpt ReportType = "srpt"
	ReportTypeERpt ReportType = "erpt"
)

func (r ReportType) Valid() bool {
	switch r {
	case ReportTypeHRpt, ReportTypeSRpt, ReportTypeERpt:
		return true
	}
	return false
}

func (r ReportType) AsValue() string { return string(r) }
func (r ReportType) String() string  { return string(r) }

// HouseCommunicationType is the House communication type.
type HouseCommunicationType string

const (
	HouseCommunicationEC HouseCommunicationType = "ec" // Executive Communication
	HouseCommunicationML HouseCommunicationType = "ml" // Memorial
	HouseCommunicationPM HouseCommunicationType = "pm" // Presidential Message
	HouseCommunicationPT HouseCommunicationType = "pt" // Petition
)

func (h HouseCommunicationType) Valid() bool {
	switch h {
	case HouseCommunicationEC, HouseCommunicationML, HouseCommunicationPM, HouseCommunicationPT:
		return true
	}
	return false
}

func (h HouseCommunicationType) AsValue() string { return string(h) }
func (h HouseCommunicationType) String() string  { return string(h) }

// SenateCommunicationType is the Senate communication type.
type SenateCommunicationType string

const (
	SenateCommunicationEC  SenateCommunicationType = "ec"  // Executive Communication
	SenateCommunicationPM  SenateCommunicationType = "pm"  // Presidential Message
	SenateCommunicationPOM SenateCommunicationType = "pom" // Petition or Memorial
)

func (s SenateCommunicationType) Valid() bool {
	switch s {
	case SenateCommunicationEC, SenateCommunicationPM, SenateCommunicationPOM:
		return true
	}
	return false
}

func (s SenateCommunicationType) AsValue() string { return string(s) }
func (s SenateCommunicationType) String() string  { return string(s) }

// StateCode is a two-letter postal code. The member resource expects the
// uppercase form in paths.
type StateCode string

var stateCodes = map[StateCode]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {},
	"DC": {}, "FL": {}, "GA": {}, "HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {},
	"KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {}, "MA": {}, "MI": {}, "MN": {},
	"MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {}, "NM": {},
	"NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {},
	"SC": {}, "SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {},
	"WV": {}, "WI": {}, "WY": {},
}

func (s StateCode) Valid() bool {
	_, ok := stateCodes[s]
	return ok
}

func (s StateCode) AsValue() string { return string(s) }
func (s StateCode) String() string  { return string(s) }
