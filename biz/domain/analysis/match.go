package analysis

import "strings"

// containsAny 是否包含任一短语, text 与短语均已小写
func containsAny(text string, patterns []string) bool {
	for _, p := range patterns {
		if p != "" && strings.Contains(text, p) {
			return true
		}
	}
	return false
}

// countHits 命中的短语个数, 每个短语最多计一次
func countHits(text string, patterns []string) int {
	n := 0
	for _, p := range patterns {
		if p != "" && strings.Contains(text, p) {
			n++
		}
	}
	return n
}

// matchedCategories 按注册顺序返回命中的分类
func matchedCategories(text string, entries []Entry) []string {
	out := make([]string, 0)
	for _, e := range entries {
		if containsAny(text, e.Patterns) {
			out = append(out, e.Category)
		}
	}
	return out
}

// appendUnique 追加未出现过的元素, 保持顺序
func appendUnique(list []string, items ...string) []string {
	for _, item := range items {
		found := false
		for _, v := range list {
			if v == item {
				found = true
				break
			}
		}
		if !found {
			list = append(list, item)
		}
	}
	return list
}
