package extraction

// ParsedMenu is the document the vision model returns: the category/item
// tree read off the photo. Prices are already normalized to decimal numbers
// by the prompt contract.
type ParsedMenu struct {
	Categories []ParsedCategory `json:"categories"`
}

type ParsedCategory struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Items       []ParsedItem `json:"items"`
}

type ParsedItem struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Price        float64  `json:"price"`
	Allergens    []string `json:"allergens"`
	IsVegetarian bool     `json:"is_vegetarian"`
	IsVegan      bool     `json:"is_vegan"`
	IsGlutenFree bool     `json:"is_gluten_free"`
}

// Validate enforces the output contract before the document reaches any
// caller: a categories array must be present, every category needs a name
// and an items array. Anything else is treated as unparsable model output.
func (d *ParsedMenu) Validate() error {
	if d.Categories == nil {
		return errMissingCategories
	}
	for i := range d.Categories {
		if d.Categories[i].Name == "" {
			return errUnnamedCategory
		}
		if d.Categories[i].Items == nil {
			d.Categories[i].Items = []ParsedItem{}
		}
	}
	return nil
}
