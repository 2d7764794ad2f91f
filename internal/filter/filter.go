package filter

import (
	"slices"
	"strings"

	"github.com/haryoiro/ytfront/internal/constants"
	"github.com/haryoiro/ytfront/internal/logger"
	"github.com/haryoiro/ytfront/internal/structures"
)

// SubscriptionSource provides the persisted list of subscribed authors
type SubscriptionSource interface {
	Subscriptions() ([]string, error)
}

// Visible returns the videos the grid shows for a category and a search
// query, in catalog order.
//
// The subscriptions category filters by the persisted author list. If that
// list cannot be read it falls back to videos tagged "subscriptions".
func Visible(src SubscriptionSource, videos []structures.Video, category, query string) []structures.Video {
	q := strings.ToLower(query)

	if category == constants.CategorySubscriptions {
		authors, err := readSubscriptions(src)
		if err != nil {
			logger.Debug("filter: subscription list unreadable, using category tag: %v", err)
			return keep(videos, func(v structures.Video) bool {
				return v.HasCategory(constants.CategorySubscriptions) && v.MatchesQuery(q)
			})
		}
		return keep(videos, func(v structures.Video) bool {
			return slices.Contains(authors, v.Author) && v.MatchesQuery(q)
		})
	}

	return keep(videos, func(v structures.Video) bool {
		if category != "" && category != constants.CategoryAll && !v.HasCategory(category) {
			return false
		}
		return v.MatchesQuery(q)
	})
}

func readSubscriptions(src SubscriptionSource) ([]string, error) {
	if src == nil {
		return nil, nil
	}
	return src.Subscriptions()
}

func keep(videos []structures.Video, pred func(structures.Video) bool) []structures.Video {
	out := make([]structures.Video, 0, len(videos))
	for _, v := range videos {
		if pred(v) {
			out = append(out, v)
		}
	}
	return out
}

// IDs returns the ids of videos, in order
func IDs(videos []structures.Video) []string {
	ids := make([]string, len(videos))
	for i, v := range videos {
		ids[i] = string(v.ID)
	}
	return ids
}
