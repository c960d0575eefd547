package universe

import "github.com/reservelabs/datwatch/pkg/models"

// defaultTheses returns the layered investment framework the dashboard
// tracks. Layer 1 is the macro worldview, layer 2 asset-level, layer 3
// structural, layer 4 business.
func defaultTheses() []models.ThesisRecord {
	return []models.ThesisRecord{
		{
			ID:        1,
			Layer:     1,
			LayerName: "Macro Worldview",
			Title:     "Fiscal Dominance & Dollar Endgame",
			CoreClaim: "Sovereign debt dynamics have shifted from monetary to fiscal dominance. The US cannot sustain its debt trajectory without default, inflation, or financial repression.",
			Confirms: []string{
				"Continued deficit spending regardless of rate environment",
				"Fed forced to accommodate Treasury issuance",
				"Real rates staying negative despite nominal hikes",
				"Dollar losing reserve status gradually",
			},
			Refutes: []string{
				"Sustained fiscal consolidation",
				"Productivity boom that grows out of debt",
				"Dollar strengthening while debt grows indefinitely",
			},
			Status:     models.ThesisWorldview,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        2,
			Layer:     1,
			LayerName: "Macro Worldview",
			Title:     "Liquidity Mechanics > Narratives",
			CoreClaim: "Global liquidity plumbing drives asset prices more than fundamentals or narratives in the short-to-medium term.",
			Confirms: []string{
				"Risk assets correlating tightly with net liquidity measures",
				"Narrative-driven rallies failing when liquidity drains",
				"'Bad news is good news' dynamics",
			},
			Refutes: []string{
				"Major assets decoupling from liquidity",
				"Fundamentals mattering more than liquidity for sustained periods",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        3,
			Layer:     1,
			LayerName: "Macro Worldview",
			Title:     "Speculation Precedes Adoption",
			CoreClaim: "Markets price narratives before fundamentals materialize, then crash before real adoption matures.",
			Confirms: []string{
				"ETH/crypto usage growing during bear markets",
				"Speculative bubbles forming on potential, not revenue",
				"Post-crash organic growth exceeding bubble-era growth",
			},
			Refutes: []string{
				"Adoption and price correlating tightly",
				"Speculation never returning after adoption matures",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        4,
			Layer:     2,
			LayerName: "Asset-Level",
			Title:     "ETH as Productive Capital, Then Store of Value",
			CoreClaim: "ETH becomes a store of value through demonstrated monetization efficiency, not instead of it. Treasury companies generating consistent yield are the proof mechanism.",
			Confirms: []string{
				"DAT yield consistency over multiple cycles",
				"ETH outperforming as collateral",
				"Institutions holding ETH for yield, not just speculation",
				"ETH volatility declining relative to other crypto",
			},
			Refutes: []string{
				"DAT yield strategies failing or compressing to zero",
				"ETH remaining purely speculative",
				"Alternative assets capturing 'productive store of value' narrative",
			},
			Status:     models.ThesisCore,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        5,
			Layer:     2,
			LayerName: "Asset-Level",
			Title:     "BTC vs ETH Role Separation",
			CoreClaim: "Bitcoin becomes neutral reserve collateral. Ethereum becomes the financial operating system. Complementary, not competitive.",
			Confirms: []string{
				"BTC adopted as reserve asset (sovereign, corporate, ETF)",
				"ETH adopted as infrastructure (DeFi, tokenization, settlement)",
				"Minimal overlap in use cases over time",
			},
			Refutes: []string{
				"BTC developing smart contract capabilities",
				"ETH absorbing monetary premium",
				"Neither winning (stablecoins or CBDCs dominating)",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionMediumHigh,
		},
		{
			ID:        6,
			Layer:     2,
			LayerName: "Asset-Level",
			Title:     "DAT as Asset Class (Phased Evolution)",
			CoreClaim: "DAT companies evolve through distinct phases: accumulation, transition, then terminal crypto royalty companies at 40-50x P/E.",
			Confirms: []string{
				"Dividend initiation by major DATs",
				"Operational costs declining as % of treasury",
				"Analyst language shifting to P/E focus",
				"NAV discounts narrowing",
			},
			Refutes: []string{
				"DATs failing to generate consistent yield",
				"Permanent NAV discounts",
				"DAT model abandoned by market",
			},
			Status:     models.ThesisCore,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        7,
			Layer:     3,
			LayerName: "Structural/Infrastructure",
			Title:     "Tokenization Is Not Liquidity",
			CoreClaim: "Tokenizing assets does not automatically create liquidity. Liquidity must be engineered through derivatives, arbitrage, leverage, and incentive design.",
			Confirms: []string{
				"Tokenized assets sitting illiquid despite being on-chain",
				"Derivatives volume exceeding spot volume for liquid assets",
				"Projects that engineer liquidity outperforming",
			},
			Refutes: []string{
				"Tokenization alone driving deep liquidity",
				"Spot markets becoming more important than derivatives",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        8,
			Layer:     3,
			LayerName: "Structural/Infrastructure",
			Title:     "Data as Financial Primitive",
			CoreClaim: "Settlement-grade data becomes infrastructure. Real-time, verifiable balance sheet data enables new financial products.",
			Confirms: []string{
				"Products built on real-time data outperforming traditional",
				"Oracles becoming critical infrastructure",
				"Companies willing to pay for real-time data",
			},
			Refutes: []string{
				"Quarterly filings remaining sufficient",
				"Data commoditizing (no moat)",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        9,
			Layer:     3,
			LayerName: "Structural/Infrastructure",
			Title:     "Volatility & Derivatives as Value Engines",
			CoreClaim: "Volatility itself is a monetizable resource. Derivatives often generate more value than spot markets.",
			Confirms: []string{
				"Derivatives volume multiples of spot volume in mature markets",
				"Volatility products driving exchange revenue",
				"DAT premiums correlating with implied volatility",
			},
			Refutes: []string{
				"Spot markets dominating derivatives long-term",
				"Volatility compressing permanently",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        10,
			Layer:     3,
			LayerName: "Structural/Infrastructure",
			Title:     "Regulatory Convergence (Hybrid Rails)",
			CoreClaim: "Regulation reshapes topology. Hybrid systems combining permissioned and public rails emerge and coexist.",
			Confirms: []string{
				"Institutional adoption via regulated wrappers (ETFs, custodians)",
				"Permissioned systems growing alongside public chains",
				"Legislation providing safe harbors",
			},
			Refutes: []string{
				"Full on-chain migration (no hybrid needed)",
				"Regulation killing on-chain activity entirely",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionMediumHigh,
		},
		{
			ID:        11,
			Layer:     4,
			LayerName: "Business",
			Title:     "Institutional Demand for DAT Derivatives Exists",
			CoreClaim: "Billions in capital are trading DAT premiums through complex multi-leg positions. This demand can be captured.",
			Confirms: []string{
				"13F filings showing fund positions in DATs",
				"Options/convertible activity on MSTR, MARA, etc.",
				"Direct conversations confirming demand",
			},
			Refutes: []string{
				"Institutional interest fading",
				"Existing instruments being sufficient",
			},
			Status:     models.ThesisActive,
			Conviction: models.ConvictionHigh,
		},
		{
			ID:        12,
			Layer:     4,
			LayerName: "Business",
			Title:     "Data Licensing as Partnership Wedge",
			CoreClaim: "DAT companies will partner for data licensing and revenue sharing rather than requiring traditional LOIs or equity deals.",
			Confirms: []string{
				"Companies engaging on rev-share proposals",
				"Data partnerships closing",
				"Companies seeing data as asset to monetize",
			},
			Refutes: []string{
				"Companies unwilling to share data",
				"Demanding equity or traditional structures",
			},
			Status:     models.ThesisTesting,
			Conviction: models.ConvictionMedium,
		},
		{
			ID:        13,
			Layer:     4,
			LayerName: "Business",
			Title:     "AI/Agentic Economy Needs On-Chain Rails",
			CoreClaim: "AI agents will transact autonomously and need deterministic, programmable finance. Ethereum becomes machine-native finance.",
			Confirms: []string{
				"AI agents using crypto for payments/settlement",
				"Agent-to-agent transactions growing",
				"Composability becoming more valuable than UX",
			},
			Refutes: []string{
				"AI agents using traditional rails",
				"Centralized platforms handling settlement internally",
			},
			Status:     models.ThesisLongTerm,
			Conviction: models.ConvictionMedium,
		},
	}
}
