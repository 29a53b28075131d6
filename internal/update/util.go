package update

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mdrakibgolder/AI-Enhanced-Productivity-Tools/internal/model"
)

func formatDuration(totalSec int) string {
	if totalSec < 0 {
		totalSec = 0
	}
	min := totalSec / 60
	sec := totalSec % 60
	return fmt.Sprintf("%02d:%02d", min, sec)
}

func logTaskFields(t model.Task) []zap.Field {
	return []zap.Field{
		zap.String("id", t.ID),
		zap.String("title", t.Title),
		zap.String("priority", string(t.Priority)),
		zap.String("category", t.Category),
	}
}
