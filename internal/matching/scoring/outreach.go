package scoring

import (
	"fmt"
	"time"

	"creatorhub_backend/internal/matching/domain"
)

// Instagram DMs work for smaller creators reaching out directly; above this
// size, outreach goes through email and talent inboxes.
const instagramOutreachFollowerCap = 50_000

const defaultOutreachTiming = "Tuesday to Thursday, 9-11 AM brand local time"

const maxContentIdeas = 3

// seasonalFrames maps the current month to a campaign framing for content
// ideas.
var seasonalFrames = [12]string{
	"a new-year reset angle",
	"a self-care February angle",
	"a spring refresh angle",
	"a spring refresh angle",
	"an early-summer angle",
	"a summer campaign angle",
	"a summer campaign angle",
	"a back-to-school angle",
	"a back-to-school angle",
	"an autumn cozy-season angle",
	"a holiday gift-guide angle",
	"a holiday gift-guide angle",
}

// buildOutreachStrategy assembles channel, hooks, content ideas and timing.
// Hooks follow a fixed priority order (campaign, interest, dream brand,
// shared value); the order is part of the contract and is never shuffled.
func buildOutreachStrategy(creator domain.CreatorProfile, brand domain.EnhancedBrand, card scorecard, now time.Time) domain.OutreachStrategy {
	return domain.OutreachStrategy{
		Channel:           pickChannel(creator, brand),
		PersonalizedHooks: buildHooks(creator, brand, card),
		ContentIdeas:      buildContentIdeas(creator, brand, now),
		BestTiming:        pickTiming(brand),
	}
}

func pickChannel(creator domain.CreatorProfile, brand domain.EnhancedBrand) string {
	if brand.PreferredChannel != "" {
		return brand.PreferredChannel
	}
	if brand.InstagramHandle != "" && creator.FollowerCount < instagramOutreachFollowerCap {
		return "instagram"
	}
	return "email"
}

func buildHooks(creator domain.CreatorProfile, brand domain.EnhancedBrand, card scorecard) []string {
	hooks := make([]string, 0, 4)

	if len(brand.UpcomingCampaigns) > 0 {
		hooks = append(hooks, fmt.Sprintf("Mention their upcoming %s campaign and how your audience fits it", brand.UpcomingCampaigns[0]))
	}
	if len(card.audience.SharedInterests) > 0 {
		hooks = append(hooks, fmt.Sprintf("Your audience's interest in %s maps directly onto their niche", card.audience.SharedInterests[0]))
	}
	if card.values.DreamBrand {
		hooks = append(hooks, "Tell them they have been on your dream collaboration list")
	}
	if shared := intersectFold(creator.BrandValues, brand.CoreValues); len(shared) > 0 {
		hooks = append(hooks, fmt.Sprintf("Lead with your shared commitment to %s", shared[0]))
	}

	return hooks
}

func buildContentIdeas(creator domain.CreatorProfile, brand domain.EnhancedBrand, now time.Time) []string {
	ideas := make([]string, 0, maxContentIdeas)

	if len(creator.ContentPillars) > 0 {
		ideas = append(ideas, fmt.Sprintf("A %s built around your %s content",
			formatOrDefault(creator.ContentStyle.PrimaryFormat), creator.ContentPillars[0]))
	}
	ideas = append(ideas, fmt.Sprintf("A piece with %s featuring %s", seasonalFrames[now.Month()-1], brand.Name))
	if len(creator.AudienceProblems) > 0 && len(ideas) < maxContentIdeas {
		ideas = append(ideas, fmt.Sprintf("A problem-solution piece addressing %q for your audience", creator.AudienceProblems[0]))
	}

	if len(ideas) > maxContentIdeas {
		ideas = ideas[:maxContentIdeas]
	}
	return ideas
}

func formatOrDefault(format string) string {
	if format == "" {
		return "post"
	}
	return format
}

func pickTiming(brand domain.EnhancedBrand) string {
	if len(brand.PreferredOutreachTimes) > 0 {
		return brand.PreferredOutreachTimes[0]
	}
	return defaultOutreachTiming
}
