package industry

import (
	"strings"

	"github.com/atelierkit/style-engine-go/internal/domain"
	"github.com/atelierkit/style-engine-go/internal/util"
)

// exactCategories accepts already-normalized category names.
var exactCategories = map[string]domain.IndustryCategory{
	"technology": domain.IndustryTechnology,
	"healthcare": domain.IndustryHealthcare,
	"finance":    domain.IndustryFinance,
	"food":       domain.IndustryFood,
	"retail":     domain.IndustryRetail,
	"creative":   domain.IndustryCreative,
	"education":  domain.IndustryEducation,
	"legal":      domain.IndustryLegal,
	"fitness":    domain.IndustryFitness,
	"realestate": domain.IndustryRealEstate,
	"other":      domain.IndustryOther,
}

// keywordCategories maps substrings of designer-entered industry strings to
// categories. Checked in declaration order so more specific keywords can
// shadow generic ones.
var keywordCategories = []struct {
	Keyword  string
	Category domain.IndustryCategory
}{
	{"software", domain.IndustryTechnology},
	{"tech", domain.IndustryTechnology},
	{"saas", domain.IndustryTechnology},
	{"startup", domain.IndustryTechnology},
	{"app", domain.IndustryTechnology},
	{"it ", domain.IndustryTechnology},
	{"dental", domain.IndustryHealthcare},
	{"medical", domain.IndustryHealthcare},
	{"clinic", domain.IndustryHealthcare},
	{"health", domain.IndustryHealthcare},
	{"therapy", domain.IndustryHealthcare},
	{"wellness", domain.IndustryHealthcare},
	{"bank", domain.IndustryFinance},
	{"invest", domain.IndustryFinance},
	{"insurance", domain.IndustryFinance},
	{"account", domain.IndustryFinance},
	{"financial", domain.IndustryFinance},
	{"restaurant", domain.IndustryFood},
	{"cafe", domain.IndustryFood},
	{"coffee", domain.IndustryFood},
	{"bakery", domain.IndustryFood},
	{"catering", domain.IndustryFood},
	{"food", domain.IndustryFood},
	{"brewery", domain.IndustryFood},
	{"shop", domain.IndustryRetail},
	{"store", domain.IndustryRetail},
	{"boutique", domain.IndustryRetail},
	{"ecommerce", domain.IndustryRetail},
	{"e-commerce", domain.IndustryRetail},
	{"fashion", domain.IndustryRetail},
	{"design", domain.IndustryCreative},
	{"studio", domain.IndustryCreative},
	{"photo", domain.IndustryCreative},
	{"art", domain.IndustryCreative},
	{"music", domain.IndustryCreative},
	{"agency", domain.IndustryCreative},
	{"school", domain.IndustryEducation},
	{"education", domain.IndustryEducation},
	{"tutor", domain.IndustryEducation},
	{"course", domain.IndustryEducation},
	{"coach", domain.IndustryEducation},
	{"law", domain.IndustryLegal},
	{"legal", domain.IndustryLegal},
	{"attorney", domain.IndustryLegal},
	{"notary", domain.IndustryLegal},
	{"gym", domain.IndustryFitness},
	{"fitness", domain.IndustryFitness},
	{"yoga", domain.IndustryFitness},
	{"pilates", domain.IndustryFitness},
	{"sport", domain.IndustryFitness},
	{"real estate", domain.IndustryRealEstate},
	{"realty", domain.IndustryRealEstate},
	{"property", domain.IndustryRealEstate},
	{"architect", domain.IndustryRealEstate},
}

// NormalizeIndustry maps an arbitrary designer-entered industry string onto
// the fixed category set: exact match first, then keyword substring, else
// "other". Every industry string entering the system must pass through here,
// or aggregates fragment across near-duplicate keys.
func NormalizeIndustry(freeText string) domain.IndustryCategory {
	normalized := util.Normalize(freeText)
	if normalized == "" {
		return domain.IndustryOther
	}
	if category, ok := exactCategories[normalized]; ok {
		return category
	}
	for _, entry := range keywordCategories {
		if strings.Contains(normalized, entry.Keyword) {
			return entry.Category
		}
	}
	return domain.IndustryOther
}
