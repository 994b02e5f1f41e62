package search

import "strings"

// synonymGroups maps theme keywords to the terms that should match together.
// A query matching any term in a group pulls the whole group into the
// expanded term set, so searching for a landmark also surfaces its city.
var synonymGroups = [][]string{
	{"파리", "paris", "에펠탑", "루브르", "몽마르트", "개선문", "샹젤리제"},
	{"스위스", "swiss", "융프라우", "인터라켄", "루체른", "알프스"},
	{"로마", "rome", "바티칸", "콜로세움", "성베드로", "트레비"},
	{"피렌체", "florence", "두오모", "우피치"},
	{"아시시", "assisi", "성프란치스코"},
	{"루르드", "lourdes", "성모", "촛불행렬"},
	{"미사", "mass", "성당", "대성당", "순례", "기도"},
	{"식사", "meal", "아침", "점심", "저녁", "맛집", "레스토랑"},
	{"이동", "transfer", "버스", "기차", "비행기", "공항", "호텔"},
	{"쇼핑", "shopping", "기념품", "면세점"},
}

// Expand turns a raw query into the set of terms to match against item
// content. The input is trimmed and lower-cased. A query shorter than two
// characters expands to just itself; callers treat that as the reset gate.
func Expand(query string) []string {
	q := strings.ToLower(strings.TrimSpace(query))
	if len([]rune(q)) < MinQueryLen {
		return []string{q}
	}

	seen := map[string]bool{q: true}
	terms := []string{q}
	for _, group := range synonymGroups {
		if !groupMatches(group, q) {
			continue
		}
		for _, syn := range group {
			if !seen[syn] {
				seen[syn] = true
				terms = append(terms, syn)
			}
		}
	}
	return terms
}

// groupMatches reports whether the query overlaps any term in the group.
func groupMatches(group []string, q string) bool {
	for _, syn := range group {
		if strings.Contains(syn, q) || strings.Contains(q, syn) {
			return true
		}
	}
	return false
}
