package services

import (
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/Tsurematsu/backendFall/internal/identity"
	"github.com/Tsurematsu/backendFall/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	ActionIncrement = "increment"
	ActionDecrement = "decrement"
)

type LeaderboardService struct {
	db           *gorm.DB
	deleteSecret string
}

func NewLeaderboardService(db *gorm.DB, deleteSecret string) *LeaderboardService {
	return &LeaderboardService{db: db, deleteSecret: deleteSecret}
}

type LeaderboardEntry struct {
	ID     uint    `json:"id"`
	Rank   int     `json:"rank"`
	Name   string  `json:"name"`
	Career string  `json:"career"`
	Age    int     `json:"age"`
	Total  int     `json:"total"`
	Reason *string `json:"reason"`
	Medal  string  `json:"medal"`
}

func toEntry(p *models.Player, rank int) *LeaderboardEntry {
	return &LeaderboardEntry{
		ID:     p.ID,
		Rank:   rank,
		Name:   p.Name,
		Career: p.Career,
		Age:    p.Age,
		Total:  p.Total,
		Reason: p.Reason,
		Medal:  Medal(rank),
	}
}

// List returns every player ordered by total descending, ties broken by
// creation order so the ranking is reproducible. Ranks are strictly
// positional: tied totals still get distinct consecutive ranks.
func (s *LeaderboardService) List() ([]LeaderboardEntry, error) {
	var players []models.Player
	if err := s.db.Order("total DESC, created_at ASC, id ASC").Find(&players).Error; err != nil {
		return nil, err
	}

	entries := make([]LeaderboardEntry, len(players))
	for i := range players {
		entries[i] = *toEntry(&players[i], i+1)
	}
	return entries, nil
}

// Get returns a single player with its dense-tie rank: the count of players
// with a strictly greater total, plus one. Players tied on total share a rank.
func (s *LeaderboardService) Get(id uint) (*LeaderboardEntry, error) {
	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rank, err := s.denseRank(player.Total)
	if err != nil {
		return nil, err
	}
	return toEntry(&player, rank), nil
}

// CreateOrIncrement resolves name to an identity key and atomically either
// creates the player with total = 1 or bumps the existing total by one. The
// whole conflict resolution is a single upsert statement so concurrent
// submissions for the same identity cannot lose updates. Age and career stick
// to their creation values; a supplied reason is appended to any existing one.
func (s *LeaderboardService) CreateOrIncrement(name string, age int, career, reason string) (*LeaderboardEntry, error) {
	key := identity.Normalize(name)
	career = strings.TrimSpace(career)
	if key == "" || career == "" || age <= 0 {
		return nil, validationError("name, age and career are required")
	}

	player := models.Player{
		IdentityKey: key,
		Name:        key,
		Career:      career,
		Age:         age,
		Total:       1,
	}
	if r := strings.TrimSpace(reason); r != "" {
		player.Reason = &r
	}

	assignments := map[string]interface{}{
		"total":      gorm.Expr("players.total + 1"),
		"updated_at": time.Now(),
	}
	if player.Reason != nil {
		assignments["reason"] = gorm.Expr(
			"CASE WHEN players.reason IS NULL OR players.reason = '' THEN ? ELSE players.reason || ', ' || ? END",
			*player.Reason, *player.Reason,
		)
	}

	if err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "identity_key"}},
		DoUpdates: clause.Assignments(assignments),
	}).Create(&player).Error; err != nil {
		return nil, err
	}

	// Re-read so the returned row reflects the committed state, whichever
	// branch of the upsert ran.
	var stored models.Player
	if err := s.db.Where("identity_key = ?", key).First(&stored).Error; err != nil {
		return nil, err
	}

	rank, err := s.denseRank(stored.Total)
	if err != nil {
		return nil, err
	}
	return toEntry(&stored, rank), nil
}

// UpdateFields partially updates a player by id. Only total (absolute
// replace) and reason (append) are mutable through this path.
func (s *LeaderboardService) UpdateFields(id uint, total *int, reason string) (*LeaderboardEntry, error) {
	reason = strings.TrimSpace(reason)
	if total == nil && reason == "" {
		return nil, validationError("no fields to update")
	}

	updates := map[string]interface{}{
		"updated_at": time.Now(),
	}
	if total != nil {
		updates["total"] = *total
	}
	if reason != "" {
		updates["reason"] = reasonAppendExpr(reason)
	}

	return s.applyUpdate(id, updates)
}

// ApplyDelta adjusts a player's total by one in the given direction. The
// adjustment runs against the stored value at commit time; there is no lower
// bound, so totals may go negative.
func (s *LeaderboardService) ApplyDelta(id uint, action, reason string) (*LeaderboardEntry, error) {
	var delta int
	switch action {
	case ActionIncrement:
		delta = 1
	case ActionDecrement:
		delta = -1
	default:
		return nil, validationError(`action must be "increment" or "decrement"`)
	}

	updates := map[string]interface{}{
		"total":      gorm.Expr("total + ?", delta),
		"updated_at": time.Now(),
	}
	if r := strings.TrimSpace(reason); r != "" {
		updates["reason"] = reasonAppendExpr(r)
	}

	return s.applyUpdate(id, updates)
}

// Delete permanently removes a player. The supplied secret must match the
// configured one; the comparison is constant-time. Returns the final snapshot
// of the removed player.
func (s *LeaderboardService) Delete(id uint, secret string) (*LeaderboardEntry, error) {
	if secret == "" {
		return nil, validationError("secret is required")
	}
	if subtle.ConstantTimeCompare([]byte(secret), []byte(s.deleteSecret)) != 1 {
		return nil, ErrUnauthorized
	}

	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	rank, err := s.denseRank(player.Total)
	if err != nil {
		return nil, err
	}

	if err := s.db.Delete(&models.Player{}, player.ID).Error; err != nil {
		return nil, err
	}
	return toEntry(&player, rank), nil
}

func (s *LeaderboardService) applyUpdate(id uint, updates map[string]interface{}) (*LeaderboardEntry, error) {
	result := s.db.Model(&models.Player{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}

	var player models.Player
	if err := s.db.First(&player, id).Error; err != nil {
		return nil, err
	}

	rank, err := s.denseRank(player.Total)
	if err != nil {
		return nil, err
	}
	return toEntry(&player, rank), nil
}

func (s *LeaderboardService) denseRank(total int) (int, error) {
	var greater int64
	if err := s.db.Model(&models.Player{}).Where("total > ?", total).Count(&greater).Error; err != nil {
		return 0, err
	}
	return int(greater) + 1, nil
}

func reasonAppendExpr(reason string) clause.Expr {
	return gorm.Expr(
		"CASE WHEN reason IS NULL OR reason = '' THEN ? ELSE reason || ', ' || ? END",
		reason, reason,
	)
}
