package common

import iso "github.com/reoring/isoskema"

type GenericIdentification1 struct {
	ID      Max35Text  `xml:"Id" json:"Id"`
	SchmeNm *Max35Text `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericIdentification1) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Id", g.ID),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type GenericIdentification30 struct {
	ID      Exact4AlphaNumericText `xml:"Id" json:"Id"`
	Issr    Max35Text              `xml:"Issr" json:"Issr"`
	SchmeNm *Max35Text             `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
}

func (g GenericIdentification30) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Id", g.ID),
		iso.Required("Issr", g.Issr),
		iso.Optional("SchmeNm", g.SchmeNm),
	)
}

type FinancialIdentificationSchemeName1Choice struct {
	Cd    *ExternalFinancialInstitutionIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                       `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c FinancialIdentificationSchemeName1Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, c.arms()...)
}

func (c FinancialIdentificationSchemeName1Choice) arms() []iso.Arm {
	return []iso.Arm{iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry)}
}

type GenericFinancialIdentification1 struct {
	ID      Max35Text                                 `xml:"Id" json:"Id"`
	SchmeNm *FinancialIdentificationSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericFinancialIdentification1) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Id", g.ID),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

type ClearingSystemIdentification2Choice struct {
	Cd    *ExternalClearingSystemIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                                 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c ClearingSystemIdentification2Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry))
}

type ClearingSystemMemberIdentification2 struct {
	ClrSysID *ClearingSystemIdentification2Choice `xml:"ClrSysId,omitempty" json:"ClrSysId,omitempty"`
	MmbID    Max35Text                            `xml:"MmbId" json:"MmbId"`
}

func (c ClearingSystemMemberIdentification2) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("ClrSysId", c.ClrSysID),
		iso.Required("MmbId", c.MmbID),
	)
}

type AccountSchemeName1Choice struct {
	Cd    *ExternalAccountIdentification1Code `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *Max35Text                          `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c AccountSchemeName1Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry))
}

type GenericAccountIdentification1 struct {
	ID      Max34Text                 `xml:"Id" json:"Id"`
	SchmeNm *AccountSchemeName1Choice `xml:"SchmeNm,omitempty" json:"SchmeNm,omitempty"`
	Issr    *Max35Text                `xml:"Issr,omitempty" json:"Issr,omitempty"`
}

func (g GenericAccountIdentification1) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Id", g.ID),
		iso.Optional("SchmeNm", g.SchmeNm),
		iso.Optional("Issr", g.Issr),
	)
}

// AccountIdentification4Choice identifies an account either by IBAN or by a
// proprietary scheme.
type AccountIdentification4Choice struct {
	IBAN *IBAN2007Identifier            `xml:"IBAN,omitempty" json:"IBAN,omitempty"`
	Othr *GenericAccountIdentification1 `xml:"Othr,omitempty" json:"Othr,omitempty"`
}

func (c AccountIdentification4Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, c.arms()...)
}

// Which returns the populated alternative ("IBAN", "Othr") or "".
func (c AccountIdentification4Choice) Which() string { return iso.Selected(c.arms()...) }

func (c AccountIdentification4Choice) arms() []iso.Arm {
	return []iso.Arm{iso.Alt("IBAN", c.IBAN), iso.Alt("Othr", c.Othr)}
}

// AccountIDByIBAN builds the IBAN alternative.
func AccountIDByIBAN(v string) AccountIdentification4Choice {
	id := IBAN2007Identifier(v)
	return AccountIdentification4Choice{IBAN: &id}
}

// AccountIDByOther builds the proprietary alternative.
func AccountIDByOther(o GenericAccountIdentification1) AccountIdentification4Choice {
	return AccountIdentification4Choice{Othr: &o}
}
