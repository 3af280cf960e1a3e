package news

import "strings"

type Category string

const (
	CategoryAll        Category = "all"
	CategoryGovernment Category = "government"
	CategoryMarket     Category = "market"
	CategoryTechnology Category = "technology"
	CategoryGeneral    Category = "general"
)

type categoryRule struct {
	category Category
	matches  func(text string) bool
}

// categoryRules are evaluated in order; the first match wins.
var categoryRules = []categoryRule{
	{CategoryGovernment, containsAny("યોજના", "સરકાર", "સબસિડી", "સહાય", "scheme", "subsidy", "government", "policy")},
	{CategoryMarket, containsAny("બજાર", "ભાવ", "મંડી", "વેપાર", "વેચાણ", "market", "price", "mandi", "trade")},
	{CategoryTechnology, containsAny("ટેકનોલોજી", "તકનીક", "મશીન", "technology", "innovation", "method", "equipment")},
}

func containsAny(keywords ...string) func(string) bool {
	lowered := make([]string, len(keywords))
	for i, k := range keywords {
		lowered[i] = strings.ToLower(k)
	}

	return func(text string) bool {
		for _, k := range lowered {
			if strings.Contains(text, k) {
				return true
			}
		}
		return false
	}
}

// Classify assigns a category from the entry title and its cleaned description.
func Classify(title, description string) Category {
	text := strings.ToLower(title + " " + description)
	for _, rule := range categoryRules {
		if rule.matches(text) {
			return rule.category
		}
	}
	return CategoryGeneral
}
