package universe

import (
	"github.com/reservelabs/datwatch/pkg/models"
	"github.com/reservelabs/datwatch/pkg/utils"
)

// Company registries. Holdings, burn, and premium-capture figures are
// manually verified against filings and press releases; the audit log
// tracks when each field was last checked.

func defaultCompanies() []models.Company {
	var all []models.Company
	all = append(all, ethCompanies()...)
	all = append(all, btcCompanies()...)
	all = append(all, solCompanies()...)
	all = append(all, hypeCompanies()...)
	all = append(all, bnbCompanies()...)
	return all
}

func ethCompanies() []models.Company {
	return []models.Company{
		{
			Ticker: "BMNR", Name: "Bitmine Immersion", Asset: models.AssetETH, Tier: 1,
			Holdings: 4_110_000, StakingPct: 0.55, StakingAPY: 0.035,
			QuarterlyBurnUSD: 9_000_000, TokensFromPremium: 320_000,
			DATStart: utils.MustDate("2025-07-01"),
			Leader:   "Tom Lee (Fundstrat)",
			Strategy: "5% of ETH supply goal, staking, validator rollout",
			Notes:    "Largest ETH treasury company",
		},
		{
			Ticker: "SBET", Name: "SharpLink Gaming", Asset: models.AssetETH, Tier: 1,
			Holdings: 838_000, StakingPct: 0.95, StakingAPY: 0.035,
			QuarterlyBurnUSD: 4_000_000, TokensFromPremium: 60_000,
			DATStart: utils.MustDate("2025-06-02"),
			Leader:   "Joe Lubin (Ethereum co-founder)",
			Strategy: "Staking, Linea partnership, tokenized equity",
			Notes:    "#2 ETH treasury company",
		},
		{
			Ticker: "ETHM", Name: "The Ether Machine", Asset: models.AssetETH, Tier: 1,
			Holdings: 496_000, StakingPct: 0.90, StakingAPY: 0.035,
			QuarterlyBurnUSD: 3_500_000, TokensFromPremium: 25_000,
			DATStart: utils.MustDate("2025-08-01"),
			Leader:   "Andrew Keys",
			Strategy: "DeFi/staking machine to grow ETH per share",
		},
		{
			Ticker: "BTBT", Name: "Bit Digital", Asset: models.AssetETH, Tier: 1,
			Holdings: 154_000, StakingPct: 0.90, StakingAPY: 0.034,
			QuarterlyBurnUSD: 5_000_000, TokensFromPremium: 12_000,
			DATStart: utils.MustDate("2025-07-07"),
			Leader:   "Sam Tabar",
			Strategy: "90% staked, fully exited BTC",
		},
		{
			Ticker: "ETHZ", Name: "ETHZilla", Asset: models.AssetETH, Tier: 2,
			Holdings: 94_000, StakingPct: 0.80, StakingAPY: 0.033,
			QuarterlyBurnUSD: 2_500_000, TokensFromPremium: 6_000,
			DATStart: utils.MustDate("2025-08-04"),
			Leader:   "Peter Thiel backed",
			Strategy: "Share buybacks",
		},
		{
			Ticker: "BTCS", Name: "BTCS Inc.", Asset: models.AssetETH, Tier: 2,
			Holdings: 70_000, StakingPct: 0.85, StakingAPY: 0.036,
			QuarterlyBurnUSD: 2_000_000, TokensFromPremium: 5_000,
			DATStart: utils.MustDate("2024-01-02"),
			Strategy: "ETH 'Bividend', DeFi/TradFi flywheel, Builder+",
		},
		{
			Ticker: "GAME", Name: "GameSquare", Asset: models.AssetETH, Tier: 2,
			Holdings: 10_000, StakingPct: 0.60, StakingAPY: 0.035,
			QuarterlyBurnUSD: 1_500_000, TokensFromPremium: 1_200,
			DATStart: utils.MustDate("2025-07-08"),
			Strategy: "$250M authorization for more",
		},
		{
			Ticker: "FGNX", Name: "Fundamental Global", Asset: models.AssetETH, Tier: 2,
			Holdings: 6_000, StakingPct: 0.50, StakingAPY: 0.035,
			QuarterlyBurnUSD: 1_000_000,
			DATStart: utils.MustDate("2025-09-02"),
			Strategy: "Insurance/reinsurance pivot",
		},
	}
}

func btcCompanies() []models.Company {
	return []models.Company{
		{
			Ticker: "MSTR", Name: "Strategy", Asset: models.AssetBTC, Tier: 1,
			Holdings:         446_000,
			QuarterlyBurnUSD: 30_000_000, TokensFromPremium: 150_000,
			DATStart: utils.MustDate("2020-08-11"),
			Leader:   "Michael Saylor",
			Strategy: "Perpetual BTC accumulation via equity and converts",
			Notes:    "The original DAT, trades well above NAV",
		},
		{
			Ticker: "MARA", Name: "MARA Holdings", Asset: models.AssetBTC, Tier: 1,
			Holdings: 45_000, IsMiner: true, MinedAnnual: 8_500,
			QuarterlyBurnUSD: 90_000_000, TokensFromPremium: 4_000,
			DATStart: utils.MustDate("2021-01-04"),
			Strategy: "HODL mining production, opportunistic raises",
		},
		{
			Ticker: "RIOT", Name: "Riot Platforms", Asset: models.AssetBTC, Tier: 2,
			Holdings: 18_000, IsMiner: true, MinedAnnual: 5_200,
			QuarterlyBurnUSD: 70_000_000,
			DATStart: utils.MustDate("2022-01-03"),
			Strategy: "Mining plus treasury retention",
		},
		{
			Ticker: "CLSK", Name: "CleanSpark", Asset: models.AssetBTC, Tier: 2,
			Holdings: 12_000, IsMiner: true, MinedAnnual: 7_000,
			QuarterlyBurnUSD: 60_000_000,
			DATStart: utils.MustDate("2023-02-01"),
			Strategy: "Low-cost mining, partial retention",
		},
		{
			Ticker: "HUT", Name: "Hut 8", Asset: models.AssetBTC, Tier: 2,
			Holdings: 10_200, IsMiner: true, MinedAnnual: 3_500,
			QuarterlyBurnUSD: 40_000_000,
			DATStart: utils.MustDate("2021-06-01"),
			Strategy: "Mining plus high-performance compute",
		},
		{
			Ticker: "SMLR", Name: "Semler Scientific", Asset: models.AssetBTC, Tier: 2,
			Holdings:         2_300,
			QuarterlyBurnUSD: 2_000_000, TokensFromPremium: 300,
			DATStart: utils.MustDate("2024-05-28"),
			Strategy: "Medical devices cash flow into BTC",
		},
	}
}

func solCompanies() []models.Company {
	return []models.Company{
		{
			Ticker: "FWDI", Name: "Forward Industries", Asset: models.AssetSOL, Tier: 1,
			Holdings: 6_800_000, StakingPct: 0.90, StakingAPY: 0.070,
			QuarterlyBurnUSD: 6_000_000, TokensFromPremium: 500_000,
			DATStart: utils.MustDate("2025-09-08"),
			Leader:   "Galaxy/Pantera/Multicoin backed",
			Strategy: "Largest SOL treasury, $1.6B+ raised",
		},
		{
			Ticker: "UPXI", Name: "Upexi", Asset: models.AssetSOL, Tier: 2,
			Holdings: 2_000_000, StakingPct: 0.85, StakingAPY: 0.072,
			QuarterlyBurnUSD: 3_000_000, TokensFromPremium: 90_000,
			DATStart: utils.MustDate("2025-04-21"),
			Strategy: "Staking plus locked-SOL discount purchases",
		},
		{
			Ticker: "DFDV", Name: "DeFi Development Corp", Asset: models.AssetSOL, Tier: 2,
			Holdings: 1_300_000, StakingPct: 0.88, StakingAPY: 0.075,
			QuarterlyBurnUSD: 2_500_000, TokensFromPremium: 70_000,
			DATStart: utils.MustDate("2025-04-07"),
			Strategy: "Validator operations, SOL per share focus",
		},
		{
			Ticker: "HSDT", Name: "Solana Company", Asset: models.AssetSOL, Tier: 2,
			Holdings: 500_000, StakingPct: 0.80, StakingAPY: 0.068,
			QuarterlyBurnUSD: 1_500_000,
			DATStart: utils.MustDate("2025-08-18"),
			Strategy: "Staking-first treasury",
		},
	}
}

func hypeCompanies() []models.Company {
	return []models.Company{
		{
			Ticker: "PURR", Name: "Hyperliquid Strategies", Asset: models.AssetHYPE, Tier: 1,
			Holdings: 12_600_000, StakingPct: 0.60, StakingAPY: 0.025,
			QuarterlyBurnUSD: 4_000_000, TokensFromPremium: 800_000,
			DATStart: utils.MustDate("2025-11-03"),
			Strategy: "SPAC-built HYPE treasury",
			Notes:    "Largest HYPE holder",
		},
		{
			Ticker: "HYPD", Name: "Hyperion DeFi", Asset: models.AssetHYPE, Tier: 2,
			Holdings: 1_500_000, StakingPct: 0.70, StakingAPY: 0.024,
			QuarterlyBurnUSD: 1_000_000,
			DATStart: utils.MustDate("2025-06-16"),
			Strategy: "Staking via Kinetiq",
		},
	}
}

func bnbCompanies() []models.Company {
	return []models.Company{
		{
			Ticker: "BNC", Name: "CEA Industries", Asset: models.AssetBNB, Tier: 1,
			Holdings: 500_000, StakingPct: 0.40, StakingAPY: 0.025,
			QuarterlyBurnUSD: 2_000_000, TokensFromPremium: 30_000,
			DATStart: utils.MustDate("2025-08-05"),
			Leader:   "YZi Labs involvement",
			Strategy: "Dominant BNB treasury",
			Notes:    "Higher regulatory risk via Binance association",
		},
		{
			Ticker: "WINT", Name: "Windtree Therapeutics", Asset: models.AssetBNB, Tier: 2,
			Holdings: 120_000, StakingPct: 0.30, StakingAPY: 0.020,
			QuarterlyBurnUSD: 1_500_000,
			DATStart: utils.MustDate("2025-07-21"),
			Strategy: "Biotech pivot to BNB treasury",
		},
	}
}
