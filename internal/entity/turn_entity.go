package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	TurnRoleUser      = "user"
	TurnRoleAssistant = "assistant"
)

// Turn is append-only. FullPromptText keeps the actual text sent to the
// generation capability for user turns; DisplayText is what the end user
// sees. A trailing user Turn with no assistant Turn after it means the
// generation failed mid-query; readers must tolerate that.
type Turn struct {
	Id             uuid.UUID
	ConversationId uuid.UUID
	Role           string
	DisplayText    string
	FullPromptText *string
	CreatedAt      time.Time
}

// TurnCitation links an assistant Turn to a cited document id.
type TurnCitation struct {
	Id         uuid.UUID
	TurnId     uuid.UUID
	DocumentId string
	CreatedAt  time.Time
}
