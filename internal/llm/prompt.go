package llm

import "fmt"

// BuildMenuExtractionPrompt instructs the vision model to digitize a menu
// photo into the structured document the import pipeline expects.
func BuildMenuExtractionPrompt() string {
	return `You are a restaurant menu digitization engine.

Analyze the attached menu photo and extract EVERY visible item.

Rules:
- Enumerate every item you can read. Do not skip any.
- Use ONLY the categories printed on the menu. Do NOT invent subcategories.
- Preserve the original menu order for categories and items.
- Normalize every price to a plain decimal number (9.50, not "9,50 €").
- Infer allergens from ingredient text (e.g. "mozzarella" implies "milk",
  "shrimp" implies "shellfish").
- If a field is not visible, use an empty string, not null.
- Output ONLY valid JSON. No explanations, no markdown.

Required JSON schema:
{
  "categories": [
    {
      "name": "string",
      "description": "string",
      "items": [
        {
          "name": "string",
          "description": "string",
          "price": number,
          "allergens": ["string"],
          "is_vegetarian": boolean,
          "is_vegan": boolean,
          "is_gluten_free": boolean
        }
      ]
    }
  ]
}

Example output:
{
  "categories": [
    {
      "name": "Pizzas",
      "description": "",
      "items": [
        {
          "name": "Margherita",
          "description": "Tomato, mozzarella, basil",
          "price": 9.5,
          "allergens": ["gluten", "milk"],
          "is_vegetarian": true,
          "is_vegan": false,
          "is_gluten_free": false
        }
      ]
    }
  ]
}`
}

// BuildTitleTranslationPrompt asks for a bare translated string.
func BuildTitleTranslationPrompt(title, languageName string) string {
	return fmt.Sprintf(
		"Translate the following restaurant menu title to %s. Return ONLY the translated text, nothing else.\n\n%s",
		languageName, title,
	)
}

// TranslationUnit is one row of the batched translation request. Type is
// "category" or "item"; the model must echo Type and ID untouched.
type TranslationUnit struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// BuildBatchTranslationPrompt packs every category and item into a single
// request so the whole menu costs one model round trip.
func BuildBatchTranslationPrompt(unitsJSON, languageName string) string {
	return fmt.Sprintf(`You are a professional culinary translator.

Translate the "name" and "description" fields of every entry below to %s.

Rules:
- Keep the "type" and "id" fields EXACTLY as they are.
- Translate only "name" and "description".
- Keep culinary terminology natural for %s menus; dish names that are
  proper nouns stay as they are.
- Reply with the translated JSON array only. No commentary.

%s`, languageName, languageName, unitsJSON)
}
