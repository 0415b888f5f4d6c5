// Package nic maps invoices to and from the government NIC/IRP e-invoice
// JSON schema. Field names are the fixed contract surface of the GST portal
// and must not be renamed.
package nic

import (
	"bytes"
	"encoding/json"
	"strings"
)

// SchemaVersion is the IRP schema version emitted on export.
const SchemaVersion = "1.1"

// DefaultStateCode is the fallback 2-digit code for state names that match
// nothing in the statutory table ("Other Territory"). Overridable through
// configuration; the two divergent fallbacks in older exporters ("97" vs
// "07") are unified on this constant.
const DefaultStateCode = "97"

// ExportStateCode is the fixed sentinel for export transactions: place of
// supply and buyer state code are forced to "96" (foreign country).
const ExportStateCode = "96"

// Document is the top-level IRP e-invoice payload.
type Document struct {
	Version    string     `json:"Version"`
	TranDtls   TranDtls   `json:"TranDtls"`
	DocDtls    DocDtls    `json:"DocDtls"`
	SellerDtls SellerDtls `json:"SellerDtls"`
	BuyerDtls  BuyerDtls  `json:"BuyerDtls"`
	ItemList   []Item     `json:"ItemList"`
	ValDtls    ValDtls    `json:"ValDtls"`
}

// TranDtls carries the tax scheme and supply classification.
type TranDtls struct {
	TaxSch      string  `json:"TaxSch"`
	SupTyp      string  `json:"SupTyp"`
	RegRev      string  `json:"RegRev"`
	EcmGstin    *string `json:"EcmGstin"`
	IgstOnIntra string  `json:"IgstOnIntra"`
}

// DocDtls identifies the document: type code (INV/CRN/DBN), number, and date
// in DD/MM/YYYY.
type DocDtls struct {
	Typ string `json:"Typ"`
	No  string `json:"No"`
	Dt  string `json:"Dt"`
}

// SellerDtls is the seller party block.
type SellerDtls struct {
	Gstin string     `json:"Gstin"`
	LglNm string     `json:"LglNm"`
	TrdNm string     `json:"TrdNm"`
	Addr1 string     `json:"Addr1"`
	Addr2 string     `json:"Addr2"`
	Loc   string     `json:"Loc"`
	Pin   FlexString `json:"Pin"`
	Stcd  string     `json:"Stcd"`
	Ph    string     `json:"Ph"`
	Em    string     `json:"Em"`
}

// BuyerDtls is the buyer party block. Pos is the place-of-supply state code.
type BuyerDtls struct {
	Gstin string     `json:"Gstin"`
	LglNm string     `json:"LglNm"`
	TrdNm string     `json:"TrdNm"`
	Pos   string     `json:"Pos"`
	Addr1 string     `json:"Addr1"`
	Addr2 string     `json:"Addr2"`
	Loc   string     `json:"Loc"`
	Pin   FlexString `json:"Pin"`
	Stcd  string     `json:"Stcd"`
	Ph    string     `json:"Ph"`
	Em    string     `json:"Em"`
}

// Item is one line of the e-invoice. All monetary values are rounded to 2
// decimals; quantity to 3.
type Item struct {
	SlNo               string  `json:"SlNo"`
	PrdDesc            string  `json:"PrdDesc"`
	IsServc            string  `json:"IsServc"`
	HsnCd              string  `json:"HsnCd"`
	Qty                float64 `json:"Qty"`
	Unit               string  `json:"Unit"`
	UnitPrice          float64 `json:"UnitPrice"`
	TotAmt             float64 `json:"TotAmt"`
	Discount           float64 `json:"Discount"`
	AssAmt             float64 `json:"AssAmt"`
	GstRt              float64 `json:"GstRt"`
	IgstAmt            float64 `json:"IgstAmt"`
	CgstAmt            float64 `json:"CgstAmt"`
	SgstAmt            float64 `json:"SgstAmt"`
	CesRt              float64 `json:"CesRt"`
	CesAmt             float64 `json:"CesAmt"`
	CesNonAdvlAmt      float64 `json:"CesNonAdvlAmt"`
	StateCesRt         float64 `json:"StateCesRt"`
	StateCesAmt        float64 `json:"StateCesAmt"`
	StateCesNonAdvlAmt float64 `json:"StateCesNonAdvlAmt"`
	OthChrg            float64 `json:"OthChrg"`
	TotItemVal         float64 `json:"TotItemVal"`
}

// ValDtls carries invoice-level aggregates.
type ValDtls struct {
	AssVal    float64 `json:"AssVal"`
	CgstVal   float64 `json:"CgstVal"`
	SgstVal   float64 `json:"SgstVal"`
	IgstVal   float64 `json:"IgstVal"`
	CesVal    float64 `json:"CesVal"`
	StCesVal  float64 `json:"StCesVal"`
	Discount  float64 `json:"Discount"`
	OthChrg   float64 `json:"OthChrg"`
	RndOffAmt float64 `json:"RndOffAmt"`
	TotInvVal float64 `json:"TotInvVal"`
}

// FlexString is a string that also accepts JSON numbers on decode. Portal
// payloads encode PIN codes inconsistently as either type.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*f = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// ErrorPayload renders a generation failure as the structured error body
// returned to callers in place of a document.
func ErrorPayload(err error) []byte {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	b, marshalErr := json.Marshal(map[string]string{"error": msg})
	if marshalErr != nil {
		return []byte(`{"error":"` + strings.ReplaceAll(msg, `"`, `'`) + `"}`)
	}
	return b
}
