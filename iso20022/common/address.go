package common

import iso "github.com/reoring/isoskema"

type AddressType3Choice struct {
	Cd    *AddressType2Code        `xml:"Cd,omitempty" json:"Cd,omitempty"`
	Prtry *GenericIdentification30 `xml:"Prtry,omitempty" json:"Prtry,omitempty"`
}

func (c AddressType3Choice) ValidateAt(p iso.PathRef) error {
	return iso.ExactlyOne(p, iso.Alt("Cd", c.Cd), iso.Alt("Prtry", c.Prtry))
}

type PostalAddress24 struct {
	AdrTp       *AddressType3Choice `xml:"AdrTp,omitempty" json:"AdrTp,omitempty"`
	Dept        *Max70Text          `xml:"Dept,omitempty" json:"Dept,omitempty"`
	SubDept     *Max70Text          `xml:"SubDept,omitempty" json:"SubDept,omitempty"`
	StrtNm      *Max70Text          `xml:"StrtNm,omitempty" json:"StrtNm,omitempty"`
	BldgNb      *Max16Text          `xml:"BldgNb,omitempty" json:"BldgNb,omitempty"`
	BldgNm      *Max35Text          `xml:"BldgNm,omitempty" json:"BldgNm,omitempty"`
	Flr         *Max70Text          `xml:"Flr,omitempty" json:"Flr,omitempty"`
	PstBx       *Max16Text          `xml:"PstBx,omitempty" json:"PstBx,omitempty"`
	Room        *Max70Text          `xml:"Room,omitempty" json:"Room,omitempty"`
	PstCd       *Max16Text          `xml:"PstCd,omitempty" json:"PstCd,omitempty"`
	TwnNm       *Max35Text          `xml:"TwnNm,omitempty" json:"TwnNm,omitempty"`
	TwnLctnNm   *Max35Text          `xml:"TwnLctnNm,omitempty" json:"TwnLctnNm,omitempty"`
	DstrctNm    *Max35Text          `xml:"DstrctNm,omitempty" json:"DstrctNm,omitempty"`
	CtrySubDvsn *Max35Text          `xml:"CtrySubDvsn,omitempty" json:"CtrySubDvsn,omitempty"`
	Ctry        *CountryCode        `xml:"Ctry,omitempty" json:"Ctry,omitempty"`
	AdrLine     []Max70Text         `xml:"AdrLine,omitempty" json:"AdrLine,omitempty"`
}

func (a PostalAddress24) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Optional("AdrTp", a.AdrTp),
		iso.Optional("Dept", a.Dept),
		iso.Optional("SubDept", a.SubDept),
		iso.Optional("StrtNm", a.StrtNm),
		iso.Optional("BldgNb", a.BldgNb),
		iso.Optional("BldgNm", a.BldgNm),
		iso.Optional("Flr", a.Flr),
		iso.Optional("PstBx", a.PstBx),
		iso.Optional("Room", a.Room),
		iso.Optional("PstCd", a.PstCd),
		iso.Optional("TwnNm", a.TwnNm),
		iso.Optional("TwnLctnNm", a.TwnLctnNm),
		iso.Optional("DstrctNm", a.DstrctNm),
		iso.Optional("CtrySubDvsn", a.CtrySubDvsn),
		iso.Optional("Ctry", a.Ctry),
		iso.Repeated("AdrLine", a.AdrLine, 0, 7),
	)
}
