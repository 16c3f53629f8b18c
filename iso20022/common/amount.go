package common

import iso "github.com/reoring/isoskema"

var (
	activeAmountFacets  = iso.NewFacets("ActiveCurrencyAndAmountSimpleType").MinInclusive(0).FractionDigits(5).TotalDigits(18)
	historicAmtFacets   = iso.NewFacets("ActiveOrHistoricCurrencyAndAmountSimpleType").MinInclusive(0).FractionDigits(5).TotalDigits(18)
	impliedAmountFacets = iso.NewFacets("ImpliedCurrencyAndAmount").MinInclusive(0).FractionDigits(5).TotalDigits(18)
)

type (
	activeAmount  struct{}
	historicAmt   struct{}
	impliedAmount struct{}
)

func (activeAmount) Facets() *iso.Facets  { return activeAmountFacets }
func (historicAmt) Facets() *iso.Facets   { return historicAmtFacets }
func (impliedAmount) Facets() *iso.Facets { return impliedAmountFacets }

type (
	ActiveCurrencyAndAmountSimpleType           = iso.Decimal[activeAmount]
	ActiveOrHistoricCurrencyAndAmountSimpleType = iso.Decimal[historicAmt]
	ImpliedCurrencyAndAmount                    = iso.Decimal[impliedAmount]
)

// ActiveCurrencyAndAmount is an amount with its currency carried in the Ccy
// attribute: <InstdAmt Ccy="USD">10.50</InstdAmt>.
type ActiveCurrencyAndAmount struct {
	Ccy   ActiveCurrencyCode                `xml:"Ccy,attr" json:"Ccy"`
	Value ActiveCurrencyAndAmountSimpleType `xml:",chardata" json:"Value"`
}

func (a ActiveCurrencyAndAmount) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Value", a.Value),
		iso.Required("Ccy", a.Ccy),
	)
}

// ActiveOrHistoricCurrencyAndAmount is the historic-currency variant of
// ActiveCurrencyAndAmount.
type ActiveOrHistoricCurrencyAndAmount struct {
	Ccy   ActiveOrHistoricCurrencyCode                `xml:"Ccy,attr" json:"Ccy"`
	Value ActiveOrHistoricCurrencyAndAmountSimpleType `xml:",chardata" json:"Value"`
}

func (a ActiveOrHistoricCurrencyAndAmount) ValidateAt(p iso.PathRef) error {
	return iso.Fields(p,
		iso.Required("Value", a.Value),
		iso.Required("Ccy", a.Ccy),
	)
}

// Amount builds an ActiveCurrencyAndAmount.
func Amount(ccy string, v float64) ActiveCurrencyAndAmount {
	return ActiveCurrencyAndAmount{Ccy: ActiveCurrencyCode(ccy), Value: ActiveCurrencyAndAmountSimpleType(v)}
}
