package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/greenvalley-school/school-cms-api/model"
	"github.com/greenvalley-school/school-cms-api/utils/auth"
)

// ExpireBannerWindows flips IsActive off for banners whose validity window has
// ended. Eligibility is also checked at query time; the sweep keeps the admin
// dashboard's active flags honest.
func (m *CronManager) ExpireBannerWindows() {
	jobName := "expire_banner_windows"

	result := m.db.Model(&model.Banner{}).
		Where("is_active = ? AND ends_at IS NOT NULL AND ends_at < ?", true, time.Now()).
		Update("is_active", false)

	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to expire banners: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Deactivated %d expired banners", result.RowsAffected))
}

// CleanupExpiredBlacklistTokens removes blacklist entries whose tokens have
// expired anyway
func (m *CronManager) CleanupExpiredBlacklistTokens() {
	jobName := "cleanup_expired_tokens"

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	blacklist := auth.NewBlacklistService(m.db)
	if err := blacklist.CleanupExpiredTokens(ctx); err != nil {
		m.logJobError(jobName, fmt.Errorf("failed to cleanup blacklist: %w", err))
		return
	}

	m.logJobComplete(jobName, "Removed expired blacklist entries")
}

// CleanupOldCronLogs prunes cron job logs older than 30 days
func (m *CronManager) CleanupOldCronLogs() {
	jobName := "cleanup_cron_logs"

	cutoff := time.Now().AddDate(0, 0, -30)
	result := m.db.Unscoped().
		Where("created_at < ?", cutoff).
		Delete(&model.CronJobLog{})

	if result.Error != nil {
		m.logJobError(jobName, fmt.Errorf("failed to prune cron logs: %w", result.Error))
		return
	}

	m.logJobComplete(jobName, fmt.Sprintf("Pruned %d old log rows", result.RowsAffected))
}
