package keywords

// Static analysis tables. Built once at init and never mutated afterwards,
// so every exported function in this package is safe for concurrent use.

var stopWords = toSet([]string{
	"a", "an", "the", "this", "that", "these", "those",
	"and", "or", "but", "nor", "so", "yet",
	"in", "on", "at", "to", "for", "of", "with", "by", "from",
	"as", "into", "onto", "over", "under", "about",
	"is", "are", "was", "were", "be", "been", "being",
	"do", "does", "did", "have", "has", "had",
	"will", "would", "can", "could", "shall", "should", "may", "might", "must",
	"it", "its", "not", "you", "your", "our", "we", "they", "their",
})

// Slug tokens carry less noise than prose, so only a small extra set is
// filtered beyond the length check.
var slugStopWords = toSet([]string{"the", "and", "for", "with", "from"})

// High-volume head terms. Exact, case-sensitive membership: callers pass
// canonical casing (product names keep their trademark form).
var primaryKeywords = toSet([]string{
	"forex",
	"trading",
	"MT4",
	"MT5",
	"MQL5",
	"metatrader",
	"expert advisor",
	"forex robot",
	"forex ea",
	"trading signals",
	"forex indicator",
	"algorithmic trading",
	"copy trading",
})

var longTailKeywords = toSet([]string{
	"best forex ea for beginners",
	"mt4 expert advisor free download",
	"mt5 grid trading robot",
	"low drawdown forex robot",
	"forex news filter indicator",
	"prop firm passing ea",
	"gold scalping ea mt5",
	"mql5 custom indicator development",
	"forex ea backtest results",
	"automated trading for small accounts",
})

var semanticRelated = map[string][]string{
	"forex":          {"currency trading", "fx market", "foreign exchange", "currency pairs"},
	"expert advisor": {"trading robot", "automated trading", "ea", "algo trading"},
	"forex robot":    {"expert advisor", "automated system", "trading bot"},
	"MT4":            {"metatrader 4", "mql4", "mt4 platform"},
	"MT5":            {"metatrader 5", "mql5", "mt5 platform"},
	"MQL5":           {"mql5 programming", "mt5 development", "custom indicators"},
	"trading signals": {"signal service", "trade alerts", "copy trading"},
	"forex indicator": {"technical indicator", "chart analysis", "trading tools"},
	"scalping":        {"scalper ea", "short-term trading", "m1 strategy"},
	"backtest":        {"strategy tester", "historical data", "optimization"},
}

func toSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
