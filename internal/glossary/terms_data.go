package glossary

// DefaultTerms is the built-in glossary used when no other catalog source is configured.
var DefaultTerms = []TermRecord{
	// Blockchain
	{
		Term:       "Blockchain",
		Definition: "A decentralized, secure ledger of transactions shared across multiple computers in a network.",
		Example:    "Bitcoin uses a blockchain to record every transaction publicly and immutably.",
		Category:   "Blockchain",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceCritical,
		Tags:       []string{"fundamental", "technology", "ledger"},
	},
	{
		Term:       "Smart Contract",
		Definition: "Self-executing contracts with terms directly written into code, automatically enforcing agreements.",
		Example:    "Ethereum smart contracts automatically execute when predetermined conditions are met.",
		Category:   "Blockchain",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceHigh,
		Tags:       []string{"ethereum", "automation", "programming"},
	},
	{
		Term:       "Consensus Mechanism",
		Definition: "The method by which blockchain networks agree on the validity of transactions and maintain network integrity.",
		Example:    "Bitcoin uses Proof of Work, while Ethereum 2.0 uses Proof of Stake as consensus mechanisms.",
		Category:   "Blockchain",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceHigh,
		Tags:       []string{"validation", "network", "security"},
	},
	// Memecoins
	{
		Term:       "Diamond Hands",
		Definition: "Investors who hold cryptocurrency through extreme volatility, refusing to sell despite market crashes or fear.",
		Example:    "Even when DOGE dropped 70%, the diamond hands community kept holding. 💎🙌",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceHigh,
		Tags:       []string{"culture", "holding", "community", "resilience"},
	},
	{
		Term:       "Paper Hands",
		Definition: "Investors who sell quickly at the first sign of trouble or small profits, opposite of diamond hands.",
		Example:    "Don't be paper hands - HODL through the dip! 📄🙌",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"culture", "selling", "weak", "fear"},
	},
	{
		Term:       "To the Moon",
		Definition: "Expression indicating belief that a cryptocurrency's price will rise dramatically to very high levels.",
		Example:    "DOGE to the moon! 🚀🌙 The community rallied behind this rallying cry.",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"bullish", "optimism", "price", "rally"},
	},
	{
		Term:       "Ape In",
		Definition: "To invest heavily and quickly into a cryptocurrency without thorough research, often driven by FOMO.",
		Example:    "I'm going to ape in to this new memecoin before it pumps to 100x!",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"impulsive", "fomo", "risky", "quick"},
	},
	{
		Term:       "Rugpull",
		Definition: "A scam where developers abandon a project and steal investors' money by removing liquidity from trading pools.",
		Example:    "The new memecoin turned out to be a rugpull - the devs disappeared overnight with $2M.",
		Category:   "Memecoins",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceCritical,
		Tags:       []string{"scam", "danger", "liquidity", "fraud"},
	},
	{
		Term:       "WAGMI",
		Definition: "We're All Gonna Make It - an optimistic phrase used in crypto communities to encourage holding through tough times.",
		Example:    "Even though we're down 50% this month, WAGMI! 💎🙌",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"optimism", "community", "motivation", "belief"},
	},
	{
		Term:       "NGMI",
		Definition: "Not Gonna Make It - used to describe someone making poor investment decisions or lacking conviction.",
		Example:    "Selling at a 20% loss during a temporary dip? That's NGMI behavior.",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"pessimism", "poor_decisions", "criticism"},
	},
	{
		Term:       "Degen",
		Definition: "Short for 'degenerate gambler' - someone who makes high-risk cryptocurrency investments with little research.",
		Example:    "Only a true degen would invest their entire life savings in a memecoin with no utility.",
		Category:   "Memecoins",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceMedium,
		Tags:       []string{"risky", "gambling", "culture", "extreme"},
	},
	{
		Term:       "Shilling",
		Definition: "Aggressively promoting a cryptocurrency for personal gain, especially on social media platforms.",
		Example:    "Stop shilling that memecoin on Twitter - it's clearly a pump and dump scheme!",
		Category:   "Memecoins",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"promotion", "manipulation", "social_media"},
	},
	// Trading
	{
		Term:       "HODL",
		Definition: "Hold On for Dear Life - a strategy of holding cryptocurrency long-term despite market volatility.",
		Example:    "Many Bitcoin investors choose to HODL through multiple market cycles for maximum gains.",
		Category:   "Trading",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceCritical,
		Tags:       []string{"strategy", "long_term", "patience"},
	},
	// Psychology
	{
		Term:       "FOMO",
		Definition: "Fear of Missing Out - the anxiety that leads to impulsive buying when seeing others profit from investments.",
		Example:    "FOMO drove me to buy the memecoin at its all-time high price, and now I'm down 80%.",
		Category:   "Psychology",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceHigh,
		Tags:       []string{"emotion", "buying", "psychology"},
	},
	{
		Term:       "FUD",
		Definition: "Fear, Uncertainty, and Doubt - negative information spread to damage a cryptocurrency's reputation and price.",
		Example:    "Don't listen to the FUD about this project - the fundamentals are still strong!",
		Category:   "Psychology",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceHigh,
		Tags:       []string{"negativity", "manipulation", "market"},
	},
	// Trading
	{
		Term:       "Whale",
		Definition: "An individual or entity that holds large amounts of cryptocurrency and can influence market prices with their trades.",
		Example:    "A Bitcoin whale just moved 10,000 BTC to an exchange, causing market panic.",
		Category:   "Trading",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceHigh,
		Tags:       []string{"large_holder", "market_impact", "influence"},
	},
	{
		Term:       "Pump and Dump",
		Definition: "An illegal scheme where the price of an asset is artificially inflated (pumped) then sold off (dumped) for profit.",
		Example:    "That memecoin was clearly a pump and dump - it went up 1000% then crashed 95% in one day.",
		Category:   "Trading",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceCritical,
		Tags:       []string{"scam", "manipulation", "illegal"},
	},
	// DeFi
	{
		Term:       "DeFi",
		Definition: "Decentralized Finance - an ecosystem of financial applications built on blockchain technology without traditional intermediaries.",
		Example:    "DeFi platforms like Uniswap allow users to trade tokens without centralized exchanges.",
		Category:   "DeFi",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceHigh,
		Tags:       []string{"finance", "decentralized", "applications"},
	},
	{
		Term:       "Yield Farming",
		Definition: "A DeFi strategy of earning rewards by providing liquidity to decentralized protocols and earning tokens in return.",
		Example:    "Yield farming on Compound can provide 15% APY but comes with smart contract risks.",
		Category:   "DeFi",
		Difficulty: DifficultyAdvanced,
		Importance: ImportanceMedium,
		Tags:       []string{"farming", "rewards", "liquidity", "apy"},
	},
	{
		Term:       "Staking",
		Definition: "Locking up cryptocurrency to support network operations (like validation) and earn rewards in return.",
		Example:    "I'm staking my ETH in Ethereum 2.0 to earn approximately 5% annual rewards.",
		Category:   "DeFi",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceHigh,
		Tags:       []string{"rewards", "network", "validation"},
	},
	// Technical
	{
		Term:       "Gas Fees",
		Definition: "Transaction fees paid to blockchain miners or validators for processing and confirming transactions.",
		Example:    "Ethereum gas fees can spike to $100+ during network congestion, making small transactions uneconomical.",
		Category:   "Technical",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceCritical,
		Tags:       []string{"fees", "transaction", "network"},
	},
	// Security
	{
		Term:       "Private Key",
		Definition: "A secret cryptographic key that gives you complete control over your cryptocurrency funds - must be kept secure.",
		Example:    "Never share your private key - 'Not your keys, not your coins' is a fundamental crypto principle.",
		Category:   "Security",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceCritical,
		Tags:       []string{"security", "wallet", "control"},
	},
	// NFTs
	{
		Term:       "NFT",
		Definition: "Non-Fungible Token - unique digital assets verified using blockchain technology, often representing art or collectibles.",
		Example:    "The Bored Ape Yacht Club NFTs became status symbols, with some selling for millions of dollars.",
		Category:   "NFTs",
		Difficulty: DifficultyBeginner,
		Importance: ImportanceMedium,
		Tags:       []string{"unique", "digital", "collectible"},
	},
	{
		Term:       "Minting",
		Definition: "The process of creating new tokens or NFTs on a blockchain network, often the first sale by creators.",
		Example:    "The new NFT collection will start minting tomorrow at 0.08 ETH per piece.",
		Category:   "NFTs",
		Difficulty: DifficultyIntermediate,
		Importance: ImportanceMedium,
		Tags:       []string{"creation", "new", "blockchain"},
	},
}
