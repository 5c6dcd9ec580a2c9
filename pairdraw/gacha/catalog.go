package gacha

// defaultCatalog is the immutable system card catalog, loaded once at
// process start. Callers only ever see copies; per-user hiding happens
// in the pool resolver, never here.
var defaultCatalog = map[Rarity][]string{
	RaritySSR: {
		"小心愿卡：下次见面你提出一个“小心愿”，我在合理范围内无条件帮你实现",
		"解决烦心事卡：你最近最烦的一件小事，我帮你搞定",
	},
	RaritySR: {
		"奶茶/饮料卡：我帮你点一杯你喜欢的奶茶或饮料",
		"小物品代购卡：我帮你买 / 带一件你需要的小东西",
	},
	RarityR: {
		"问题查询卡：你委托我查一个问题，我帮你查清楚",
		"提醒服务卡：帮你做一次简单的提醒",
	},
	RarityN: {
		"餐馆推荐卡：帮你搜一个好吃、便宜、离你近的餐馆推荐",
		"地点清单卡：给你整理一份附近可去的地点清单",
	},
}

// DefaultCards returns a copy of the default card texts for one tier.
func DefaultCards(rarity Rarity) []string {
	src := defaultCatalog[rarity]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// IsDefaultCard reports whether text exactly matches a known default
// card in the given tier.
func IsDefaultCard(rarity Rarity, text string) bool {
	for _, t := range defaultCatalog[rarity] {
		if t == text {
			return true
		}
	}
	return false
}
