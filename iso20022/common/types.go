// Package common holds the ISO 20022 data types shared by several message
// sets: bounded texts, identifiers, codes, dates and amounts.
package common

import iso "github.com/reoring/isoskema"

var (
	max4TextFacets      = iso.NewFacets("Max4Text").Length(1, 4)
	max16TextFacets     = iso.NewFacets("Max16Text").Length(1, 16)
	max34TextFacets     = iso.NewFacets("Max34Text").Length(1, 34)
	max35TextFacets     = iso.NewFacets("Max35Text").Length(1, 35)
	max70TextFacets     = iso.NewFacets("Max70Text").Length(1, 70)
	max105TextFacets    = iso.NewFacets("Max105Text").Length(1, 105)
	max140TextFacets    = iso.NewFacets("Max140Text").Length(1, 140)
	max350TextFacets    = iso.NewFacets("Max350Text").Length(1, 350)
	max1000TextFacets   = iso.NewFacets("Max1000Text").Length(1, 1000)
	max4AlnumFacets     = iso.NewFacets("Max4AlphaNumericText").Length(1, 4).Pattern(`[a-zA-Z0-9]{1,4}`)
	exact4AlnumFacets   = iso.NewFacets("Exact4AlphaNumericText").Pattern(`[a-zA-Z0-9]{4}`)
	bicfiFacets         = iso.NewFacets("BICFIDec2014Identifier").Pattern(`[A-Z0-9]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?`)
	anyBICFacets        = iso.NewFacets("AnyBICDec2014Identifier").Pattern(`[A-Z0-9]{4}[A-Z]{2}[A-Z0-9]{2}([A-Z0-9]{3})?`)
	leiFacets           = iso.NewFacets("LEIIdentifier").Pattern(`[A-Z0-9]{18}[0-9]{2}`)
	ibanFacets          = iso.NewFacets("IBAN2007Identifier").Pattern(`[A-Z]{2}[0-9]{2}[a-zA-Z0-9]{1,30}`)
	activeCcyFacets     = iso.NewFacets("ActiveCurrencyCode").Pattern(`[A-Z]{3}`)
	historicCcyFacets   = iso.NewFacets("ActiveOrHistoricCurrencyCode").Pattern(`[A-Z]{3}`)
	countryFacets       = iso.NewFacets("CountryCode").Pattern(`[A-Z]{2}`)
	isoDateFacets       = iso.NewFacets("ISODate").Format(iso.FormatISODate)
	isoDateTimeFacets   = iso.NewFacets("ISODateTime").Format(iso.FormatISODateTime)
	extClrSysFacets     = iso.NewFacets("ExternalClearingSystemIdentification1Code").Length(1, 5)
	extFinInstnIDFacets = iso.NewFacets("ExternalFinancialInstitutionIdentification1Code").Length(1, 4)
	extAcctIDFacets     = iso.NewFacets("ExternalAccountIdentification1Code").Length(1, 4)
	addressTypeFacets   = iso.NewFacets("AddressType2Code").Enum("ADDR", "PBOX", "HOME", "BIZZ", "MLTO", "DLVY")
	creditDebitFacets   = iso.NewFacets("CreditDebitCode").Enum("CRDT", "DBIT")
)

type (
	max4Text      struct{}
	max16Text     struct{}
	max34Text     struct{}
	max35Text     struct{}
	max70Text     struct{}
	max105Text    struct{}
	max140Text    struct{}
	max350Text    struct{}
	max1000Text   struct{}
	max4Alnum     struct{}
	exact4Alnum   struct{}
	bicfi         struct{}
	anyBIC        struct{}
	lei           struct{}
	iban          struct{}
	activeCcy     struct{}
	historicCcy   struct{}
	country       struct{}
	isoDate       struct{}
	isoDateTime   struct{}
	extClrSys     struct{}
	extFinInstnID struct{}
	extAcctID     struct{}
	addressType   struct{}
	creditDebit   struct{}
)

func (max4Text) Facets() *iso.Facets      { return max4TextFacets }
func (max16Text) Facets() *iso.Facets     { return max16TextFacets }
func (max34Text) Facets() *iso.Facets     { return max34TextFacets }
func (max35Text) Facets() *iso.Facets     { return max35TextFacets }
func (max70Text) Facets() *iso.Facets     { return max70TextFacets }
func (max105Text) Facets() *iso.Facets    { return max105TextFacets }
func (max140Text) Facets() *iso.Facets    { return max140TextFacets }
func (max350Text) Facets() *iso.Facets    { return max350TextFacets }
func (max1000Text) Facets() *iso.Facets   { return max1000TextFacets }
func (max4Alnum) Facets() *iso.Facets     { return max4AlnumFacets }
func (exact4Alnum) Facets() *iso.Facets   { return exact4AlnumFacets }
func (bicfi) Facets() *iso.Facets         { return bicfiFacets }
func (anyBIC) Facets() *iso.Facets        { return anyBICFacets }
func (lei) Facets() *iso.Facets           { return leiFacets }
func (iban) Facets() *iso.Facets          { return ibanFacets }
func (activeCcy) Facets() *iso.Facets     { return activeCcyFacets }
func (historicCcy) Facets() *iso.Facets   { return historicCcyFacets }
func (country) Facets() *iso.Facets       { return countryFacets }
func (isoDate) Facets() *iso.Facets       { return isoDateFacets }
func (isoDateTime) Facets() *iso.Facets   { return isoDateTimeFacets }
func (extClrSys) Facets() *iso.Facets     { return extClrSysFacets }
func (extFinInstnID) Facets() *iso.Facets { return extFinInstnIDFacets }
func (extAcctID) Facets() *iso.Facets     { return extAcctIDFacets }
func (addressType) Facets() *iso.Facets   { return addressTypeFacets }
func (creditDebit) Facets() *iso.Facets   { return creditDebitFacets }

type (
	Max4Text                                        = iso.Text[max4Text]
	Max16Text                                       = iso.Text[max16Text]
	Max34Text                                       = iso.Text[max34Text]
	Max35Text                                       = iso.Text[max35Text]
	Max70Text                                       = iso.Text[max70Text]
	Max105Text                                      = iso.Text[max105Text]
	Max140Text                                      = iso.Text[max140Text]
	Max350Text                                      = iso.Text[max350Text]
	Max1000Text                                     = iso.Text[max1000Text]
	Max4AlphaNumericText                            = iso.Text[max4Alnum]
	Exact4AlphaNumericText                          = iso.Text[exact4Alnum]
	BICFIDec2014Identifier                          = iso.Text[bicfi]
	AnyBICDec2014Identifier                         = iso.Text[anyBIC]
	LEIIdentifier                                   = iso.Text[lei]
	IBAN2007Identifier                              = iso.Text[iban]
	ActiveCurrencyCode                              = iso.Text[activeCcy]
	ActiveOrHistoricCurrencyCode                    = iso.Text[historicCcy]
	CountryCode                                     = iso.Text[country]
	ISODate                                         = iso.Text[isoDate]
	ISODateTime                                     = iso.Text[isoDateTime]
	ExternalClearingSystemIdentification1Code       = iso.Text[extClrSys]
	ExternalFinancialInstitutionIdentification1Code = iso.Text[extFinInstnID]
	ExternalAccountIdentification1Code              = iso.Text[extAcctID]
	AddressType2Code                                = iso.Text[addressType]
	CreditDebitCode                                 = iso.Text[creditDebit]
)

// Address type codes.
const (
	AddressTypeADDR AddressType2Code = "ADDR"
	AddressTypePBOX AddressType2Code = "PBOX"
	AddressTypeHOME AddressType2Code = "HOME"
	AddressTypeBIZZ AddressType2Code = "BIZZ"
	AddressTypeMLTO AddressType2Code = "MLTO"
	AddressTypeDLVY AddressType2Code = "DLVY"
)

// Credit/debit indicators.
const (
	Credit CreditDebitCode = "CRDT"
	Debit  CreditDebitCode = "DBIT"
)
