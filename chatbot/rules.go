package chatbot

import (
	"regexp"
	"strings"
)

// Canned responses around the keyword rules.
const (
	// Landing is the first message shown when the chat opens.
	Landing = "I'm here to help you learn about crypto. Type a topic or question to get started."

	fallbackNoMatch = "I'm specialized in crypto basics: Bitcoin, Ethereum, wallets, DeFi, staking, NFTs, blockchain, and safety. Try asking something like 'What is Bitcoin?', 'How do wallets work?', or 'What is DeFi?' — or ask in your own words and I'll do my best to help."

	// offTopicResponse is shown when the AI detects the query is not about crypto at all.
	offTopicResponse = "I'm here to help with crypto basics only. Ask me about Bitcoin, Ethereum, wallets, DeFi, staking, NFTs, or how to get started!"

	offTopicSentinel = "[NOT_CRYPTO]"
)

var shortAffirmative = regexp.MustCompile(`^(yes|yeah|yep|yup|no|nope|ok|okay|sure|maybe)$`)

// matchResponses returns a response string for every topic rule that matches
// the query. An empty slice means no rule matched.
func matchResponses(input string) []string {
	q := strings.ToLower(strings.TrimSpace(input))
	if q == "" {
		return []string{"Ask me anything about crypto! For example: What is Bitcoin? How do wallets work? What is DeFi?"}
	}

	// Short replies (yes/no/ok) carry no topic; answer with a statement so
	// they never reach the AI fallback as off-topic.
	if shortAffirmative.MatchString(q) {
		return []string{"Type a crypto topic or question and I'll explain — for example 'What is Bitcoin?' or 'How do wallets work?'"}
	}

	var out []string
	has := func(subs ...string) bool {
		for _, s := range subs {
			if strings.Contains(q, s) {
				return true
			}
		}
		return false
	}

	if has("bitcoin", "btc") {
		switch {
		case has("invest", "buy", "safe"):
			out = append(out, "Bitcoin is volatile: prices can swing a lot. Many investors use dollar-cost averaging (DCA) — investing a fixed amount regularly — to reduce timing risk. Only invest what you can afford to lose, and consider it a long-term hold. Never invest based on hype or FOMO.")
		case has("what is", "explain", "how does"):
			out = append(out, "Bitcoin (BTC) is the first cryptocurrency, created in 2009 by Satoshi Nakamoto. It's decentralized digital money that runs on a public ledger called the blockchain. No bank or government controls it — a network of computers validates transactions. People use it as a store of value (like digital gold) and for payments. You can buy fractions of a Bitcoin; you don't need to buy a whole one.")
		default:
			out = append(out, "Bitcoin is the first and largest cryptocurrency by market cap. It's decentralized, limited to 21 million coins, and secured by proof-of-work mining. You can ask about how it works or how to invest.")
		}
	}

	if has("ethereum", "eth ") || q == "eth" {
		if has("gas") {
			out = append(out, "Gas on Ethereum is the fee you pay to run a transaction or smart contract. It's paid in ETH. When the network is busy, gas prices go up. Wallets usually let you choose speed (slow/medium/fast) by adjusting the gas price.")
		}
		if has("what is", "explain", "smart contract") {
			out = append(out, "Ethereum is a blockchain platform that runs smart contracts — code that executes automatically when conditions are met. It powers decentralized apps (dApps), DeFi (lending, trading), NFTs, and more. Unlike Bitcoin (mainly for money), Ethereum is like a global computer. Its native token is ETH, used to pay for transactions (gas) and to stake. It's the second-largest crypto by market cap and is moving to proof-of-stake for lower energy use.")
		} else {
			out = append(out, "Ethereum is the second-largest crypto by market cap and the leading platform for smart contracts and dApps. It's moving to proof-of-stake (Ethereum 2.0) for lower energy use and faster transactions.")
		}
	}

	if has("wallet", "metamask", "where to store") {
		out = append(out, "A crypto wallet holds your private keys — the credentials that control your coins. Types: (1) Software wallets (e.g. MetaMask, Trust Wallet) — app or browser extension, you control the keys. (2) Hardware wallets (e.g. Ledger, Trezor) — physical device, very secure for large amounts. (3) Exchange wallets — the exchange holds keys for you; convenient but less control. Rule of thumb: not your keys, not your coins. For small amounts, a good software wallet is fine; for larger sums, consider a hardware wallet.")
	}

	if has("defi", "decentralized finance") {
		out = append(out, "DeFi (decentralized finance) is financial services (lending, borrowing, trading) built on blockchains with smart contracts — no banks in the middle. You connect a wallet (e.g. MetaMask) and interact with apps like Uniswap or Aave. Benefits: permissionless, transparent. Risks: smart contract risk, volatility, and complexity. Do your research before using DeFi.")
	}
	if has("staking") {
		out = append(out, "Staking means locking your crypto to help secure a proof-of-stake blockchain (e.g. Ethereum, Solana). In return you earn rewards (more of that crypto). It's like earning interest, but with smart-contract and market risk. Only stake what you understand and can afford to lock up.")
	}
	if has("yield") {
		out = append(out, "Yield in crypto usually means earning more tokens by lending, staking, or providing liquidity in DeFi protocols. APY can be high but so is risk: smart contract bugs, impermanent loss, and token price drops. Start with well-audited protocols and small amounts.")
	}

	if has("blockchain", "how does crypto work") {
		out = append(out, "A blockchain is a shared digital ledger. Transactions are grouped into blocks, and each block is linked to the previous one (hence 'chain'). Many computers (nodes) keep a copy and agree on new blocks, so no single party can change history. Crypto uses this for transparency and security. Bitcoin and Ethereum are two different blockchains with different rules and purposes.")
	}

	if has("nft", "non-fungible") {
		out = append(out, "NFTs (non-fungible tokens) are unique digital items recorded on a blockchain — often art, collectibles, or in-game assets. 'Non-fungible' means one isn't interchangeable with another (unlike 1 BTC = 1 BTC). Ownership is proven by the blockchain; the file (image, etc.) may be stored elsewhere. NFT markets can be very speculative; treat them as high-risk if you're investing.")
	}

	if has("solana", "sol ") {
		out = append(out, "Solana is a fast, low-fee blockchain designed for scale. It can process thousands of transactions per second and supports DeFi, NFTs, and gaming. It uses proof-of-stake and a mechanism called proof-of-history. It's younger than Bitcoin and Ethereum, so the ecosystem and token (SOL) can be more volatile. Do your own research before investing.")
	}

	if has("doge", "meme coin", "shiba") {
		out = append(out, "Dogecoin (DOGE) started as a meme in 2013 but became a real cryptocurrency with a large community. Meme coins are often driven by social media and sentiment rather than fundamentals. They can be very volatile. Only invest what you're comfortable losing, and avoid buying just because of hype or FOMO.")
	}

	if has("scam", "safe", "security", "phishing") {
		out = append(out, "Stay safe: (1) Never share your seed phrase or private keys with anyone — no legit service will ask. (2) Double-check URLs and contract addresses; phishing sites mimic real ones. (3) Be wary of 'too good to be true' returns and DMs offering help. (4) Use hardware or trusted software wallets; avoid leaving large amounts on exchanges long-term. (5) If something feels off, slow down and verify.")
	}

	if has("how to buy", "get started", "beginner", "start") {
		out = append(out, "To get started: (1) Choose a reputable exchange (e.g. Coinbase, Kraken) or a wallet that supports buying. (2) Complete verification (KYC) if required. (3) Start with a small amount and use dollar-cost averaging if you're investing. (4) Move crypto to your own wallet if you're holding long-term — not your keys, not your coins. This simulator is a great place to practice before using real money.")
	}

	if has("volatile", "risk", "crash") {
		out = append(out, "Crypto is highly volatile: prices can swing 10-20% or more in a short time. That can mean big gains or big losses. Never invest money you need for bills or emergencies. Diversify, do your research, and avoid borrowing to buy crypto. This simulator lets you practice with fake money so you can learn without real risk.")
	}

	if has("what is crypto", "what is cryptocurrency") {
		out = append(out, "Cryptocurrency is digital money that uses cryptography and runs on blockchains. Unlike traditional currency, it's usually decentralized (no central bank). Bitcoin was the first; now there are thousands. People use it for payments, investing, DeFi, and more. Each project has different goals — some are money, some are platforms for apps.")
	}

	// Greetings and thanks only when no topic matched.
	if len(out) == 0 {
		if has("hello", "hi ", "hey") {
			return []string{"Hi! I'm here to help you learn about crypto. You can ask about Bitcoin, Ethereum, wallets, DeFi, staking, NFTs, security, or how to get started. What would you like to know?"}
		}
		if has("thank") {
			return []string{"You're welcome! Ask anytime if you have more questions about crypto."}
		}
	}

	return out
}

// combine joins matched responses into one message, dropping duplicates and
// keeping first-match order.
func combine(responses []string) string {
	seen := make(map[string]bool, len(responses))
	unique := responses[:0:0]
	for _, r := range responses {
		if seen[r] {
			continue
		}
		seen[r] = true
		unique = append(unique, r)
	}
	return strings.Join(unique, "\n\n")
}
