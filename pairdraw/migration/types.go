package migration

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MongoUser is a user document from the legacy deployment.
type MongoUser struct {
	ID        primitive.ObjectID `bson:"_id"`
	Name      string             `bson:"name"`
	Password  string             `bson:"password"`
	DrawCount int32              `bson:"drawcount"`
	AvatarURL string             `bson:"avatar"`
	CreatedAt time.Time          `bson:"created"`
}

// MongoCouple is a binding document from the legacy deployment. Member
// names are stored instead of ids; the migrator resolves them after
// users are imported.
type MongoCouple struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserA     string             `bson:"usera"`
	UserB     string             `bson:"userb"`
	CreatedAt time.Time          `bson:"created"`
}

// MongoDrawLog is a draw history document from the legacy deployment.
type MongoDrawLog struct {
	ID        primitive.ObjectID `bson:"_id"`
	UserName  string             `bson:"user"`
	CardText  string             `bson:"card"`
	Rarity    string             `bson:"rarity"`
	CreatedAt time.Time          `bson:"created"`
}

// MigrationStats accumulates progress across all steps.
type MigrationStats struct {
	Tables    map[string]*TableStats `json:"tables"`
	StartTime time.Time              `json:"start_time"`
	EndTime   time.Time              `json:"end_time"`
}

// TableStats tracks one table's outcome.
type TableStats struct {
	TableName string `json:"table_name"`
	Processed int    `json:"processed"`
	Imported  int    `json:"imported"`
	Skipped   int    `json:"skipped"`
}
