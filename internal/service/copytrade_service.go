package service

import (
	"fmt"
	"sort"
	"strings"

	"github.com/peterzzshi/gmgn-clone/internal/catalog"
	"github.com/peterzzshi/gmgn-clone/internal/core/domain"
	"github.com/peterzzshi/gmgn-clone/internal/core/ports"
	"github.com/peterzzshi/gmgn-clone/pkg/apperror"

	"github.com/rs/zerolog"
)

const topTradersSize = 5

// copyTradeService implements ports.CopyTradeService over the mock trader
// book plus a follow-relationship store.
type copyTradeService struct {
	follows ports.CopyTradeRepository
	log     zerolog.Logger
}

// NewCopyTradeService creates the copy-trading service.
func NewCopyTradeService(follows ports.CopyTradeRepository, log zerolog.Logger) ports.CopyTradeService {
	return &copyTradeService{follows: follows, log: log}
}

func traderField(t domain.Trader, field string) float64 {
	switch field {
	case "pnlPercent30d":
		return t.PnlPercent30d
	case "followers":
		return float64(t.Followers)
	case "winRate":
		return t.WinRate
	default:
		return t.PnlPercent7d
	}
}

func sortTraders(traders []domain.Trader, field, order string) {
	sort.SliceStable(traders, func(i, j int) bool {
		if order == "asc" {
			return traderField(traders[i], field) < traderField(traders[j], field)
		}
		return traderField(traders[i], field) > traderField(traders[j], field)
	})
}

// ListTraders searches, filters, sorts and pages the leaderboard. Search
// matches display name or address; tag matching is a case-insensitive
// substring test.
func (s *copyTradeService) ListTraders(params ports.TraderListParams) ([]domain.Trader, int) {
	traders := catalog.Traders()

	if q := strings.ToLower(strings.TrimSpace(params.Search)); q != "" {
		filtered := traders[:0:0]
		for _, t := range traders {
			if strings.Contains(strings.ToLower(t.DisplayName), q) ||
				strings.Contains(strings.ToLower(t.Address), q) {
				filtered = append(filtered, t)
			}
		}
		traders = filtered
	}

	if tag := strings.ToLower(params.Tag); tag != "" {
		filtered := traders[:0:0]
		for _, t := range traders {
			for _, tt := range t.Tags {
				if strings.Contains(strings.ToLower(tt), tag) {
					filtered = append(filtered, t)
					break
				}
			}
		}
		traders = filtered
	}

	if params.VerifiedOnly {
		filtered := traders[:0:0]
		for _, t := range traders {
			if t.IsVerified {
				filtered = append(filtered, t)
			}
		}
		traders = filtered
	}

	sortBy := params.SortBy
	switch sortBy {
	case "", "pnlPercent7d", "pnlPercent30d", "followers", "winRate":
	default:
		sortBy = "pnlPercent7d"
	}
	sortTraders(traders, sortBy, params.SortOrder)

	total := len(traders)
	return pageSlice(traders, params.Page, params.Limit), total
}

func (s *copyTradeService) GetTrader(traderID string) (*domain.Trader, error) {
	trader := catalog.TraderByID(traderID)
	if trader == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Trader '%s'", traderID))
	}
	return trader, nil
}

// TopTraders is the leaderboard head by 7d performance.
func (s *copyTradeService) TopTraders() []domain.Trader {
	traders := catalog.Traders()
	sortTraders(traders, "pnlPercent7d", "desc")
	if len(traders) > topTradersSize {
		traders = traders[:topTradersSize]
	}
	return traders
}

// Positions lists the user's copy positions with an aggregate summary.
// status "open"/"closed" narrows the list; anything else returns all.
func (s *copyTradeService) Positions(userID string, status string) (*ports.PositionsResult, error) {
	all := catalog.Positions()
	positions := all[:0:0]
	for _, p := range all {
		if p.UserID != userID {
			continue
		}
		switch status {
		case "open":
			if p.Status != domain.PositionOpen {
				continue
			}
		case "closed":
			if p.Status != domain.PositionClosed {
				continue
			}
		}
		positions = append(positions, p)
	}

	summary := ports.PositionsSummary{Total: len(positions)}
	for _, p := range positions {
		if p.Status == domain.PositionOpen {
			summary.OpenCount++
		}
		summary.TotalPnl += p.Pnl
	}

	if positions == nil {
		positions = []domain.CopyPosition{}
	}
	return &ports.PositionsResult{Positions: positions, Summary: summary}, nil
}

// Follow starts mirroring a trader with default settings, activated.
func (s *copyTradeService) Follow(userID, traderID string) (*ports.FollowResult, error) {
	trader := catalog.TraderByID(traderID)
	if trader == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Trader '%s'", traderID))
	}

	settings := domain.DefaultCopySettings(traderID)
	settings.IsActive = true
	s.follows.Follow(userID, settings)

	s.log.Info().Str("user_id", userID).Str("trader_id", traderID).Msg("following trader")
	return &ports.FollowResult{CopySettings: settings, Trader: *trader}, nil
}

// Unfollow stops mirroring. Unfollowing a trader who was never followed is
// still acknowledged.
func (s *copyTradeService) Unfollow(userID, traderID string) error {
	if removed := s.follows.Unfollow(userID, traderID); removed {
		s.log.Info().Str("user_id", userID).Str("trader_id", traderID).Msg("unfollowed trader")
	}
	return nil
}

// UpdateSettings applies partial changes to the stored settings, starting
// the follow with defaults if none exist yet. TraderID itself is immutable.
func (s *copyTradeService) UpdateSettings(userID, traderID string, update ports.SettingsUpdate) (*domain.CopySettings, error) {
	if catalog.TraderByID(traderID) == nil {
		return nil, apperror.NotFound(fmt.Sprintf("Trader '%s'", traderID))
	}

	current := s.follows.Settings(userID, traderID)
	if current == nil {
		settings := domain.DefaultCopySettings(traderID)
		current = &settings
	}

	if update.IsActive != nil {
		current.IsActive = *update.IsActive
	}
	if update.MaxPositionSize != nil {
		current.MaxPositionSize = *update.MaxPositionSize
	}
	if update.CopyRatio != nil {
		current.CopyRatio = *update.CopyRatio
	}
	if update.StopLoss != nil {
		current.StopLoss = *update.StopLoss
	}
	if update.TakeProfit != nil {
		current.TakeProfit = *update.TakeProfit
	}
	if update.MaxDailyTrades != nil {
		current.MaxDailyTrades = *update.MaxDailyTrades
	}

	s.follows.Follow(userID, *current)
	return current, nil
}
