// Package export projects a priced order onto the flat cost-sheet row used by
// the accounting spreadsheet.
package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/guttosm/bag-pricing-service/internal/domain/model"
)

const (
	groupName   = "Пакеты (Расчет)"
	storageUnit = "шт"

	moneyPlaces  = 4
	weightPlaces = 3
)

// Columns are the sheet headers, in order.
var Columns = []string{
	"Номенклатурная группа",
	"Родственность",
	"Продукция",
	"Единица хранения остатков",
	"Код",
	"Схема печати",
	"Тираж",
	"Вес",
	"Краска",
	"Скотч",
	"Расходы на электроэнергию",
	"Упаковка",
	"Втулка",
	"ЗП ИТОГО",
	"ЗП выгонка",
	"ЗП ламинация",
	"ЗП печать",
	"ЗП рубка",
	"ЗП резка",
	"Сырье",
	"Постоянные расходы ГУ",
	"Постоянные расходы",
	"Риски",
	"Общая себестоимость",
}

// Row is one cost-sheet line. Monetary fields are per bag; Weight is the
// batch weight in kg. Paint, Tape, Bobbin and the unused labor buckets are
// always zero.
type Row struct {
	Group          string  `json:"group"`
	Relation       string  `json:"relation"`
	Product        string  `json:"product"`
	StorageUnit    string  `json:"storage_unit"`
	Code           string  `json:"code"`
	PrintScheme    string  `json:"print_scheme"`
	Quantity       int     `json:"quantity"`
	Weight         float64 `json:"weight"`
	Paint          float64 `json:"paint"`
	Tape           float64 `json:"tape"`
	Electricity    float64 `json:"electricity"`
	Packaging      float64 `json:"packaging"`
	Bobbin         float64 `json:"bobbin"`
	LaborTotal     float64 `json:"labor_total"`
	LaborExtrusion float64 `json:"labor_extrusion"`
	LaborLaminate  float64 `json:"labor_lamination"`
	LaborPrinting  float64 `json:"labor_printing"`
	LaborCutting   float64 `json:"labor_cutting"`
	LaborSlitting  float64 `json:"labor_slitting"`
	RawMaterial    float64 `json:"raw_material"`
	FixedCostsGU   float64 `json:"fixed_costs_gu"`
	FixedCosts     float64 `json:"fixed_costs"`
	Risks          float64 `json:"risks"`
	TotalCost      float64 `json:"total_cost"`
}

// BuildRow derives the sheet row for a priced order. cfg must be the
// configuration the result was computed with.
//
// Fixed costs are VC/k2 and risks are (fixed costs + VC) * (k3 - 1). The
// overhead appears only in its own column.
func BuildRow(order model.OrderInput, result model.CalculationResult, cfg model.PricingConfig) Row {
	vc := decimal.NewFromFloat(result.VariableCost)
	overhead := decimal.NewFromFloat(result.OverheadCost)
	fixed := vc.Div(decimal.NewFromFloat(cfg.K2MarginDivisor))
	risks := fixed.Add(vc).Mul(decimal.NewFromFloat(cfg.K3MarginMultiplier).Sub(decimal.NewFromInt(1)))

	weightKg := decimal.NewFromFloat(result.WeightGrams).
		Mul(decimal.NewFromInt(int64(order.Quantity))).
		Div(decimal.NewFromInt(1000))

	labor := money(decimal.NewFromFloat(result.LaborCost))

	return Row{
		Group:        groupName,
		Product:      ProductName(order),
		StorageUnit:  storageUnit,
		PrintScheme:  order.PrintScheme,
		Quantity:     order.Quantity,
		Weight:       weightKg.Round(weightPlaces).InexactFloat64(),
		Electricity:  money(decimal.NewFromFloat(result.Details.Electricity)),
		Packaging:    money(decimal.NewFromFloat(result.Details.BoxComponent)),
		LaborTotal:   labor,
		LaborCutting: labor,
		RawMaterial:  money(decimal.NewFromFloat(result.MaterialCost).Add(decimal.NewFromFloat(result.ScrapCost))),
		FixedCostsGU: money(overhead),
		FixedCosts:   money(fixed),
		Risks:        money(risks),
		TotalCost:    result.FinalPrice,
	}
}

func money(d decimal.Decimal) float64 {
	return d.Round(moneyPlaces).InexactFloat64()
}

// ProductName builds the catalogue name, for example
// "Пакет BOPP викет кл.клапан 20x30+4(ф5) 25мкм".
func ProductName(order model.OrderInput) string {
	parts := []string{"Пакет", string(order.ProductType)}
	if order.Features.IsWicket {
		parts = append(parts, "викет")
	}
	if order.Features.GlueTape {
		parts = append(parts, "кл.клапан")
	}

	dims := num(order.Width) + "x" + num(order.Length)
	if order.Flap > 0 {
		dims += "+" + num(order.Flap)
	}
	if order.Fold > 0 {
		dims += "(ф" + num(order.Fold) + ")"
	}
	parts = append(parts, dims, num(order.Thickness)+"мкм")
	return strings.Join(parts, " ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Values returns the row cells in Columns order.
func (r Row) Values() []any {
	return []any{
		r.Group,
		r.Relation,
		r.Product,
		r.StorageUnit,
		r.Code,
		r.PrintScheme,
		r.Quantity,
		r.Weight,
		r.Paint,
		r.Tape,
		r.Electricity,
		r.Packaging,
		r.Bobbin,
		r.LaborTotal,
		r.LaborExtrusion,
		r.LaborLaminate,
		r.LaborPrinting,
		r.LaborCutting,
		r.LaborSlitting,
		r.RawMaterial,
		r.FixedCostsGU,
		r.FixedCosts,
		r.Risks,
		r.TotalCost,
	}
}
