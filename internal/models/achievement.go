package models

import (
	"time"
)

// EventKind identifies a domain action that can advance achievements.
type EventKind string

const (
	EventThreadCreated  EventKind = "thread_created"
	EventCommentPosted  EventKind = "comment_posted"
	EventFriendAdded    EventKind = "friend_added"
	EventFeedPosted     EventKind = "feed_posted"
	EventLikeGiven      EventKind = "like_given"
	EventMessageSent    EventKind = "message_sent"
	EventListingCreated EventKind = "listing_created"
)

// Achievement type constants
const (
	AchievementFirstForumPost    = "first_forum_post"
	AchievementDiscussionStarter = "discussion_starter"
	AchievementFirstComment      = "first_comment"
	AchievementForumRegular      = "forum_regular"
	AchievementFriendConnector   = "friend_connector"
	AchievementSocialButterfly   = "social_butterfly"
	AchievementFirstFeedPost     = "first_feed_post"
	AchievementFeedEnthusiast    = "feed_enthusiast"
	AchievementKindHeart         = "kind_heart"
	AchievementFirstMessage      = "first_message"
	AchievementChatterbox        = "chatterbox"
	AchievementFirstListing      = "first_listing"
	AchievementTeaMerchant       = "tea_merchant"
)

// AchievementDefinition is a static catalog entry. The catalog is built once
// at package init and never mutated at runtime.
type AchievementDefinition struct {
	Type           string
	Event          EventKind
	Title          string
	Description    string
	Target         int64
	RewardPoints   int64
	RewardBorderID string
}

var achievementCatalog = []AchievementDefinition{
	{Type: AchievementFirstForumPost, Event: EventThreadCreated, Title: "First Steep", Description: "Start your first forum thread", Target: 1, RewardPoints: 10, RewardBorderID: BorderBronzeWhisk},
	{Type: AchievementDiscussionStarter, Event: EventThreadCreated, Title: "Discussion Starter", Description: "Start 5 forum threads", Target: 5, RewardPoints: 50, RewardBorderID: BorderSilverWhisk},
	{Type: AchievementFirstComment, Event: EventCommentPosted, Title: "Joining the Conversation", Description: "Post your first comment", Target: 1, RewardPoints: 5},
	{Type: AchievementForumRegular, Event: EventCommentPosted, Title: "Forum Regular", Description: "Post 25 comments", Target: 25, RewardPoints: 75},
	{Type: AchievementFriendConnector, Event: EventFriendAdded, Title: "Friend Connector", Description: "Make 5 friend connections", Target: 5, RewardPoints: 40, RewardBorderID: BorderJadeLeaf},
	{Type: AchievementSocialButterfly, Event: EventFriendAdded, Title: "Social Butterfly", Description: "Make 20 friend connections", Target: 20, RewardPoints: 150, RewardBorderID: BorderGoldenWhisk},
	{Type: AchievementFirstFeedPost, Event: EventFeedPosted, Title: "Hello, Matcha World", Description: "Share your first feed post", Target: 1, RewardPoints: 5},
	{Type: AchievementFeedEnthusiast, Event: EventFeedPosted, Title: "Feed Enthusiast", Description: "Share 15 feed posts", Target: 15, RewardPoints: 60},
	{Type: AchievementKindHeart, Event: EventLikeGiven, Title: "Kind Heart", Description: "Like 50 posts", Target: 50, RewardPoints: 50},
	{Type: AchievementFirstMessage, Event: EventMessageSent, Title: "Reaching Out", Description: "Send your first direct message", Target: 1, RewardPoints: 5},
	{Type: AchievementChatterbox, Event: EventMessageSent, Title: "Chatterbox", Description: "Send 100 direct messages", Target: 100, RewardPoints: 80},
	{Type: AchievementFirstListing, Event: EventListingCreated, Title: "Open for Business", Description: "Create your first marketplace listing", Target: 1, RewardPoints: 15},
	{Type: AchievementTeaMerchant, Event: EventListingCreated, Title: "Tea Merchant", Description: "Create 10 marketplace listings", Target: 10, RewardPoints: 100, RewardBorderID: BorderMerchantSeal},
}

var (
	achievementsByEvent map[EventKind][]AchievementDefinition
	achievementsByType  map[string]AchievementDefinition
)

func init() {
	achievementsByEvent = make(map[EventKind][]AchievementDefinition)
	achievementsByType = make(map[string]AchievementDefinition, len(achievementCatalog))
	for _, def := range achievementCatalog {
		achievementsByEvent[def.Event] = append(achievementsByEvent[def.Event], def)
		achievementsByType[def.Type] = def
	}
}

// AchievementCatalog returns the full static catalog.
func AchievementCatalog() []AchievementDefinition {
	return achievementCatalog
}

// AchievementsForEvent returns every definition advanced by the given event.
// A single event may drive several achievements (e.g. a new thread counts
// toward both first_forum_post and discussion_starter).
func AchievementsForEvent(kind EventKind) []AchievementDefinition {
	return achievementsByEvent[kind]
}

// AchievementByType looks up a single definition.
func AchievementByType(achType string) (AchievementDefinition, bool) {
	def, ok := achievementsByType[achType]
	return def, ok
}

// ValidEventKind reports whether the event kind exists in the catalog.
func ValidEventKind(kind EventKind) bool {
	_, ok := achievementsByEvent[kind]
	return ok
}

// UserAchievement tracks one user's progress toward one achievement.
// Rows are lazily created with progress 0 and never deleted.
type UserAchievement struct {
	ID              uint       `gorm:"primaryKey"`
	UserID          uint       `gorm:"not null;index:idx_user_achievement,unique"`
	User            User       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AchievementType string     `gorm:"type:varchar(50);not null;index:idx_user_achievement,unique"`
	Progress        int64      `gorm:"not null;default:0"`
	Completed       bool       `gorm:"not null;default:false"`
	CompletedAt     *time.Time
	CreatedAt       time.Time `gorm:"autoCreateTime"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime"`
}

func (UserAchievement) TableName() string {
	return "user_achievements"
}
