package catalog

import (
	"time"

	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
)

var traders = []domain.Trader{
	{
		ID:            "trader-1",
		Address:       "7xKX...3nPq",
		DisplayName:   "SolanaWhale",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=whale",
		Bio:           "Full-time DeFi trader. Focus on SOL ecosystem gems. NFA.",
		Followers:     12_450,
		Pnl7d:         45_230,
		Pnl30d:        182_400,
		PnlPercent7d:  23.5,
		PnlPercent30d: 89.2,
		WinRate:       72.4,
		TotalTrades:   1_245,
		AvgHoldTime:   14_400,
		IsVerified:    true,
		Tags:          []string{"Top Trader", "Whale", "DeFi"},
	},
	{
		ID:            "trader-2",
		Address:       "3mKL...9xRt",
		DisplayName:   "MemeKing",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=meme",
		Bio:           "Early meme coin hunter. DYOR. High risk, high reward.",
		Followers:     8_920,
		Pnl7d:         28_100,
		Pnl30d:        -15_600,
		PnlPercent7d:  156.8,
		PnlPercent30d: -12.4,
		WinRate:       45.2,
		TotalTrades:   892,
		AvgHoldTime:   3_600,
		IsVerified:    true,
		Tags:          []string{"Meme Hunter", "High Risk"},
	},
	{
		ID:            "trader-3",
		Address:       "9pQR...2wXz",
		DisplayName:   "DiamondHands",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=diamond",
		Bio:           "Long-term holder. Blue chip tokens only. Patience pays.",
		Followers:     5_640,
		Pnl7d:         8_450,
		Pnl30d:        95_200,
		PnlPercent7d:  4.2,
		PnlPercent30d: 47.6,
		WinRate:       68.9,
		TotalTrades:   156,
		AvgHoldTime:   604_800,
		IsVerified:    false,
		Tags:          []string{"Holder", "Blue Chip"},
	},
	{
		ID:            "trader-4",
		Address:       "5tYU...7mNb",
		DisplayName:   "ScalpMaster",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=scalp",
		Bio:           "Quick in, quick out. Scalping is an art form.",
		Followers:     15_780,
		Pnl7d:         12_890,
		Pnl30d:        67_450,
		PnlPercent7d:  8.9,
		PnlPercent30d: 42.3,
		WinRate:       61.5,
		TotalTrades:   4_567,
		AvgHoldTime:   900,
		IsVerified:    true,
		Tags:          []string{"Scalper", "High Frequency"},
	},
	{
		ID:            "trader-5",
		Address:       "2aBC...4dEf",
		DisplayName:   "NFTDegen",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=nft",
		Bio:           "NFT & token trader. Community alpha. LFG!",
		Followers:     3_210,
		Pnl7d:         -5_670,
		Pnl30d:        23_400,
		PnlPercent7d:  -8.4,
		PnlPercent30d: 34.7,
		WinRate:       52.1,
		TotalTrades:   678,
		AvgHoldTime:   86_400,
		IsVerified:    false,
		Tags:          []string{"NFT", "Community"},
	},
	{
		ID:            "trader-6",
		Address:       "8gHI...1jKl",
		DisplayName:   "AlphaSeeker",
		AvatarURL:     "https://api.dicebear.com/7.x/identicon/svg?seed=alpha",
		Bio:           "On-chain analysis. Finding alpha before the crowd.",
		Followers:     9_870,
		Pnl7d:         34_560,
		Pnl30d:        145_800,
		PnlPercent7d:  18.7,
		PnlPercent30d: 78.9,
		WinRate:       65.3,
		TotalTrades:   423,
		AvgHoldTime:   43_200,
		IsVerified:    true,
		Tags:          []string{"Alpha", "On-chain", "Analyst"},
	},
}

// Traders returns the mock trader leaderboard.
func Traders() []domain.Trader {
	out := make([]domain.Trader, len(traders))
	copy(out, traders)
	return out
}

// TraderByID looks a trader up by id.
func TraderByID(traderID string) *domain.Trader {
	for i := range traders {
		if traders[i].ID == traderID {
			t := traders[i]
			return &t
		}
	}
	return nil
}

// Positions returns the seeded mock copy positions for the demo user.
func Positions() []domain.CopyPosition {
	now := time.Now().UTC()
	return []domain.CopyPosition{
		{
			ID:           "pos-1",
			TraderID:     "trader-1",
			UserID:       domain.DefaultUserID,
			TokenID:      "bonk",
			EntryPrice:   0.00002534,
			CurrentPrice: 0.00002834,
			Amount:       50_000_000,
			Pnl:          150,
			PnlPercent:   11.84,
			Status:       domain.PositionOpen,
			OpenedAt:     now.Add(-24 * time.Hour),
		},
		{
			ID:           "pos-2",
			TraderID:     "trader-1",
			UserID:       domain.DefaultUserID,
			TokenID:      "wif",
			EntryPrice:   2.12,
			CurrentPrice: 2.45,
			Amount:       100,
			Pnl:          33,
			PnlPercent:   15.57,
			Status:       domain.PositionOpen,
			OpenedAt:     now.Add(-48 * time.Hour),
		},
		{
			ID:           "pos-3",
			TraderID:     "trader-4",
			UserID:       domain.DefaultUserID,
			TokenID:      "jup",
			EntryPrice:   0.95,
			CurrentPrice: 0.92,
			Amount:       500,
			Pnl:          -15,
			PnlPercent:   -3.16,
			Status:       domain.PositionOpen,
			OpenedAt:     now.Add(-time.Hour),
		},
	}
}
