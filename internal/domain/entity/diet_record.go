package entity

import (
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// FoodRefKind names which food a record refers to.
type FoodRefKind string

const (
	FoodRefNone     FoodRefKind = ""
	FoodRefOfficial FoodRefKind = "official"
	FoodRefCustom   FoodRefKind = "custom"
	FoodRefManual   FoodRefKind = "manual"
)

// DefaultQuantity applies when a record does not state one.
const DefaultQuantity = 1.0

// FoodRef is exactly one of an official food id, a custom food id or a free-text
// name. The fields are unexported so no code path can set two at once.
type FoodRef struct {
	kind FoodRefKind
	id   int64
	name string
}

func OfficialFoodRef(id int64) FoodRef {
	return FoodRef{kind: FoodRefOfficial, id: id}
}

func CustomFoodRef(id int64) FoodRef {
	return FoodRef{kind: FoodRefCustom, id: id}
}

func ManualFoodRef(name string) FoodRef {
	return FoodRef{kind: FoodRefManual, name: name}
}

func (r FoodRef) Kind() FoodRefKind {
	return r.kind
}

// IsZero reports a missing or unusable reference.
func (r FoodRef) IsZero() bool {
	switch r.kind {
	case FoodRefOfficial, FoodRefCustom:
		return r.id == 0
	case FoodRefManual:
		return strings.TrimSpace(r.name) == ""
	default:
		return true
	}
}

func (r FoodRef) OfficialFoodID() (int64, bool) {
	return r.id, r.kind == FoodRefOfficial
}

func (r FoodRef) CustomFoodID() (int64, bool) {
	return r.id, r.kind == FoodRefCustom
}

func (r FoodRef) ManualName() (string, bool) {
	return r.name, r.kind == FoodRefManual
}

// foodRefFields is the wire shape: three keys, at most one non-null.
type foodRefFields struct {
	OfficialFoodID *int64  `json:"official_food_id"`
	CustomFoodID   *int64  `json:"custom_food_id"`
	ManualName     *string `json:"manual_name"`
}

func (r FoodRef) fields() foodRefFields {
	var f foodRefFields
	switch r.kind {
	case FoodRefOfficial:
		id := r.id
		f.OfficialFoodID = &id
	case FoodRefCustom:
		id := r.id
		f.CustomFoodID = &id
	case FoodRefManual:
		name := r.name
		f.ManualName = &name
	}

	return f
}

// toFoodRef picks official over custom over manual when a response sets more
// than one key, the same precedence the record labels use.
func (f foodRefFields) toFoodRef() FoodRef {
	switch {
	case f.OfficialFoodID != nil && *f.OfficialFoodID != 0:
		return OfficialFoodRef(*f.OfficialFoodID)
	case f.CustomFoodID != nil && *f.CustomFoodID != 0:
		return CustomFoodRef(*f.CustomFoodID)
	case f.ManualName != nil && *f.ManualName != "":
		return ManualFoodRef(*f.ManualName)
	default:
		return FoodRef{}
	}
}

// DietRecord is one logged intake. The sums are per-record totals already
// multiplied by Quantity, copied at save time.
type DietRecord struct {
	ID          int64
	OwnerUserID UserID
	Food        FoodRef
	RecordTime  RecordTime
	Quantity    float64
	CalorieSum  float64
	CarbSum     float64
	ProteinSum  float64
	FatSum      float64
}

// Sums returns the record totals as a macro set.
func (r DietRecord) Sums() Macros {
	return Macros{Calories: r.CalorieSum, Carbs: r.CarbSum, Protein: r.ProteinSum, Fat: r.FatSum}
}

type dietRecordJSON struct {
	ID          int64      `json:"id,omitempty"`
	OwnerUserID UserID     `json:"user_id,omitempty"`
	RecordTime  RecordTime `json:"record_time"`
	Quantity    *float64   `json:"quantity,omitempty"`
	Qty         *float64   `json:"qty,omitempty"`
	CalorieSum  float64    `json:"calorie_sum"`
	CarbSum     float64    `json:"carb_sum"`
	ProteinSum  float64    `json:"protein_sum"`
	FatSum      float64    `json:"fat_sum"`
	foodRefFields
}

func (r DietRecord) MarshalJSON() ([]byte, error) {
	quantity := r.Quantity
	out := dietRecordJSON{
		ID:            r.ID,
		OwnerUserID:   r.OwnerUserID,
		RecordTime:    r.RecordTime,
		Quantity:      &quantity,
		CalorieSum:    r.CalorieSum,
		CarbSum:       r.CarbSum,
		ProteinSum:    r.ProteinSum,
		FatSum:        r.FatSum,
		foodRefFields: r.Food.fields(),
	}

	return json.Marshal(out)
}

// UnmarshalJSON accepts both "quantity" and the backend's "qty".
func (r *DietRecord) UnmarshalJSON(data []byte) error {
	var in dietRecordJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.Wrap(err, "decode diet record")
	}

	quantity := DefaultQuantity
	switch {
	case in.Quantity != nil:
		quantity = *in.Quantity
	case in.Qty != nil:
		quantity = *in.Qty
	}

	*r = DietRecord{
		ID:          in.ID,
		OwnerUserID: in.OwnerUserID,
		Food:        in.foodRefFields.toFoodRef(),
		RecordTime:  in.RecordTime,
		Quantity:    quantity,
		CalorieSum:  in.CalorieSum,
		CarbSum:     in.CarbSum,
		ProteinSum:  in.ProteinSum,
		FatSum:      in.FatSum,
	}

	return nil
}

// DietRecordInput is the create/update body of the diet-record service.
type DietRecordInput struct {
	RecordTime RecordTime
	Quantity   float64
	Sums       Macros
	Food       FoodRef
}

func (in DietRecordInput) MarshalJSON() ([]byte, error) {
	quantity := in.Quantity
	if quantity <= 0 {
		quantity = DefaultQuantity
	}

	return json.Marshal(dietRecordJSON{
		RecordTime:    in.RecordTime,
		Quantity:      &quantity,
		CalorieSum:    in.Sums.Calories,
		CarbSum:       in.Sums.Carbs,
		ProteinSum:    in.Sums.Protein,
		FatSum:        in.Sums.Fat,
		foodRefFields: in.Food.fields(),
	})
}
