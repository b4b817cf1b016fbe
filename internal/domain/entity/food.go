package entity

// Macros are the four nutrition figures tracked for a serving or a record.
type Macros struct {
	Calories float64
	Carbs    float64
	Protein  float64
	Fat      float64
}

// Scale multiplies every figure by quantity.
func (m Macros) Scale(quantity float64) Macros {
	return Macros{
		Calories: m.Calories * quantity,
		Carbs:    m.Carbs * quantity,
		Protein:  m.Protein * quantity,
		Fat:      m.Fat * quantity,
	}
}

// Add sums two macro sets.
func (m Macros) Add(other Macros) Macros {
	return Macros{
		Calories: m.Calories + other.Calories,
		Carbs:    m.Carbs + other.Carbs,
		Protein:  m.Protein + other.Protein,
		Fat:      m.Fat + other.Fat,
	}
}

// MacroGrams is carbs + protein + fat, the base for proportion charts.
func (m Macros) MacroGrams() float64 {
	return m.Carbs + m.Protein + m.Fat
}

// OfficialFood is a read-only catalog entry curated by the backend.
// Macros are per unit serving.
type OfficialFood struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Carbs    float64 `json:"carbs"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
}

// Macros returns the per-unit figures.
func (f OfficialFood) Macros() Macros {
	return Macros{Calories: f.Calories, Carbs: f.Carbs, Protein: f.Protein, Fat: f.Fat}
}

// CustomFood is a catalog entry authored by one user; names are unique per owner
// on the backend only.
type CustomFood struct {
	ID          int64   `json:"id"`
	OwnerUserID UserID  `json:"user_id,omitempty"`
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Carbs       float64 `json:"carbs"`
	Protein     float64 `json:"protein"`
	Fat         float64 `json:"fat"`
}

// Macros returns the per-unit figures.
func (f CustomFood) Macros() Macros {
	return Macros{Calories: f.Calories, Carbs: f.Carbs, Protein: f.Protein, Fat: f.Fat}
}

// CustomFoodInput is the create/update body of the custom-food service.
type CustomFoodInput struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}
