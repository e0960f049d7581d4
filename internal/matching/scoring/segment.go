package scoring

import "strings"

// segmentKeywordTable maps industry keywords to a coarse market segment.
// Both the candidate brand's industry and a past collaboration's industry go
// through the same table, so the segment-match bonus compares like with like.
var segmentKeywordTable = []struct {
	segment  string
	keywords []string
}{
	{"fashion", []string{"fashion", "apparel", "clothing", "footwear", "accessories"}},
	{"beauty", []string{"beauty", "cosmetic", "skincare", "haircare", "fragrance"}},
	{"fitness", []string{"fitness", "sport", "athletic", "wellness", "nutrition", "supplement"}},
	{"food", []string{"food", "beverage", "drink", "snack", "restaurant", "coffee"}},
	{"tech", []string{"tech", "software", "electronics", "gaming", "app", "saas"}},
	{"travel", []string{"travel", "hospitality", "hotel", "airline", "tourism"}},
	{"finance", []string{"finance", "bank", "insurance", "fintech", "invest"}},
	{"home", []string{"home", "furniture", "decor", "interior", "garden"}},
	{"family", []string{"baby", "kids", "parenting", "toys", "family"}},
}

// marketSegment buckets an industry string, or returns "" when unknown.
func marketSegment(industry string) string {
	lowered := strings.ToLower(industry)
	if lowered == "" {
		return ""
	}
	for _, entry := range segmentKeywordTable {
		for _, kw := range entry.keywords {
			if strings.Contains(lowered, kw) {
				return entry.segment
			}
		}
	}
	return ""
}
