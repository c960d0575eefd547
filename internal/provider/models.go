package provider

// ModelType identifies a standard data model a fetcher can produce.
// Each ModelType maps to a specific data structure in pkg/models/.
type ModelType string

const (
	// Crypto market data.
	ModelCryptoPrice ModelType = "CryptoPrice" // → map[models.Asset]models.CryptoQuote
	ModelDefiTVL     ModelType = "DefiTVL"     // → models.TVLSnapshot
	ModelStaking     ModelType = "StakingStats" // → models.StakingStats

	// Treasury registries published by aggregators.
	ModelTreasuryCompanies ModelType = "TreasuryCompanies" // → []models.TreasuryCompany

	// Equity market data.
	ModelStockQuote   ModelType = "StockQuote"   // → models.MarketSnapshot
	ModelStockHistory ModelType = "StockHistory" // → []models.PricePoint

	// Macro data.
	ModelMacroSeries  ModelType = "MacroSeries"  // → models.MacroSeries
	ModelNetLiquidity ModelType = "NetLiquidity" // → models.NetLiquidity

	// Disclosure and news.
	ModelFilings ModelType = "Filings" // → []models.Filing
	ModelNews    ModelType = "News"    // → []models.NewsArticle
)

// AllModels returns every defined model type. Useful for iteration and
// coverage checks.
func AllModels() []ModelType {
	return []ModelType{
		ModelCryptoPrice, ModelDefiTVL, ModelStaking,
		ModelTreasuryCompanies,
		ModelStockQuote, ModelStockHistory,
		ModelMacroSeries, ModelNetLiquidity,
		ModelFilings, ModelNews,
	}
}

// ModelCategory maps model types to their dashboard section.
func ModelCategory(m ModelType) string {
	switch m {
	case ModelCryptoPrice, ModelDefiTVL, ModelStaking:
		return "Crypto"
	case ModelTreasuryCompanies:
		return "Treasuries"
	case ModelStockQuote, ModelStockHistory:
		return "Equity"
	case ModelMacroSeries, ModelNetLiquidity:
		return "Macro"
	case ModelFilings, ModelNews:
		return "Disclosure"
	default:
		return "Other"
	}
}
