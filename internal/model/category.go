package model

// MainCategory is the top level of the transaction taxonomy.
type MainCategory string

const (
	CategoryEssential     MainCategory = "essential"
	CategoryDiscretionary MainCategory = "discretionary"
	CategoryIncidental    MainCategory = "incidental"
	CategoryGift          MainCategory = "gift"
)

// SubCategory is the second level of the taxonomy. Each subcategory
// belongs to exactly one main category.
type SubCategory string

const (
	SubHousing        SubCategory = "housing"
	SubTransportation SubCategory = "transportation"
	SubInsurance      SubCategory = "insurance"

	SubEntertainment SubCategory = "entertainment"
	SubDining        SubCategory = "dining"
	SubTravel        SubCategory = "travel"
	SubFitness       SubCategory = "fitness"

	SubCopay       SubCategory = "copay"
	SubRepairs     SubCategory = "repairs"
	SubDeductibles SubCategory = "deductibles"

	SubCharity  SubCategory = "charity"
	SubTithes   SubCategory = "tithes"
	SubPersonal SubCategory = "personal"
)

// subcategories is the closed mapping from main category to its allowed
// subcategories. Fixed at definition time; there is no mutation API.
var subcategories = map[MainCategory][]SubCategory{
	CategoryEssential:     {SubHousing, SubTransportation, SubInsurance},
	CategoryDiscretionary: {SubEntertainment, SubDining, SubTravel, SubFitness},
	CategoryIncidental:    {SubCopay, SubRepairs, SubDeductibles},
	CategoryGift:          {SubCharity, SubTithes, SubPersonal},
}

// MainCategories returns all main categories in a stable order.
func MainCategories() []MainCategory {
	return []MainCategory{CategoryEssential, CategoryDiscretionary, CategoryIncidental, CategoryGift}
}

// Subcategories returns the allowed subcategories for a main category.
// Returns nil for an unknown main category.
func Subcategories(main MainCategory) []SubCategory {
	subs, ok := subcategories[main]
	if !ok {
		return nil
	}
	out := make([]SubCategory, len(subs))
	copy(out, subs)
	return out
}

// ValidCategory reports whether sub belongs to main's allowed set.
func ValidCategory(main MainCategory, sub SubCategory) bool {
	for _, s := range subcategories[main] {
		if s == sub {
			return true
		}
	}
	return false
}

// ValidateCategory returns a ValidationError when sub does not belong to
// main's allowed set.
func ValidateCategory(main MainCategory, sub SubCategory) error {
	if _, ok := subcategories[main]; !ok {
		return &ValidationError{Field: "category", Value: string(main), Reason: "unknown main category"}
	}
	if !ValidCategory(main, sub) {
		return &ValidationError{
			Field:  "subCategory",
			Value:  string(sub),
			Reason: "not an allowed subcategory of " + string(main),
		}
	}
	return nil
}
