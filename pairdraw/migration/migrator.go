package migration

import (
	"bufio"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/uptrace/bun"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/pairdraw/pairdraw/pairdraw/database/models"
	"github.com/pairdraw/pairdraw/pairdraw/gacha"
)

// Migrator imports legacy MongoDB data into PostgreSQL: either from
// mongodump BSON files in a data directory, or straight from a live
// Mongo database. Users go first; couples and draw logs reference
// users by name in the legacy schema, so both steps resolve names
// against the freshly imported users table.
type Migrator struct {
	pgDB      *bun.DB
	dataDir   string
	batchSize int

	mongoDB   *mongo.Database
	collNames map[string]string

	// name -> id cache built after the users step
	userIDsByName map[string]int64

	stats MigrationStats
}

func NewMigrator(pgDB *bun.DB, dataDir string) *Migrator {
	return &Migrator{
		pgDB:      pgDB,
		dataDir:   dataDir,
		batchSize: 500,
		collNames: map[string]string{
			"users":     "users",
			"couples":   "couples",
			"draw_logs": "drawlogs",
		},
		stats: MigrationStats{
			Tables:    make(map[string]*TableStats),
			StartTime: time.Now(),
		},
	}
}

// UseMongo switches the migrator to live-Mongo mode.
func (m *Migrator) UseMongo(client *mongo.Client, dbName string) {
	if client != nil && dbName != "" {
		m.mongoDB = client.Database(dbName)
	}
}

// SetCollectionName overrides a legacy collection name.
func (m *Migrator) SetCollectionName(kind, name string) {
	if kind != "" && name != "" {
		m.collNames[kind] = name
	}
}

func (m *Migrator) SetBatchSize(size int) {
	if size > 0 {
		m.batchSize = size
	}
}

// MigrateAll runs every step in dependency order.
func (m *Migrator) MigrateAll(ctx context.Context) error {
	steps := []struct {
		name    string
		migrate func(context.Context) error
	}{
		{"users", m.MigrateUsers},
		{"couples", m.MigrateCouples},
		{"draw_logs", m.MigrateDrawLogs},
	}

	for _, step := range steps {
		slog.Info("Starting migration step",
			slog.String("type", "db"),
			slog.String("step", step.name))
		if err := step.migrate(ctx); err != nil {
			return fmt.Errorf("migration failed at step %s: %w", step.name, err)
		}
		slog.Info("Completed migration step",
			slog.String("type", "db"),
			slog.String("step", step.name))
	}

	m.stats.EndTime = time.Now()
	m.logFinalStats()
	return nil
}

// MigrateUsers imports user accounts. Duplicate names keep the last
// occurrence; the legacy app had no unique index on name.
func (m *Migrator) MigrateUsers(ctx context.Context) error {
	var legacy []MongoUser
	if err := m.load(ctx, "users", func(raw []byte) error {
		var mu MongoUser
		if err := bson.Unmarshal(raw, &mu); err != nil {
			return err
		}
		legacy = append(legacy, mu)
		return nil
	}); err != nil {
		return err
	}

	stats := m.tableStats("users")
	stats.Processed = len(legacy)

	byName := make(map[string]*models.User, len(legacy))
	for _, mu := range legacy {
		if mu.Name == "" {
			stats.Skipped++
			continue
		}
		now := time.Now()
		created := mu.CreatedAt
		if created.IsZero() {
			created = now
		}
		byName[mu.Name] = &models.User{
			Name:       mu.Name,
			Credential: mu.Password,
			DrawCount:  int64(mu.DrawCount),
			AvatarURL:  mu.AvatarURL,
			CreatedAt:  created,
			UpdatedAt:  now,
		}
	}

	users := make([]*models.User, 0, len(byName))
	for _, u := range byName {
		users = append(users, u)
	}

	for start := 0; start < len(users); start += m.batchSize {
		end := start + m.batchSize
		if end > len(users) {
			end = len(users)
		}
		batch := users[start:end]
		if _, err := m.pgDB.NewInsert().
			Model(&batch).
			On("CONFLICT (name) DO NOTHING").
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert user batch: %w", err)
		}
		stats.Imported += len(batch)
	}

	return m.loadUserIDs(ctx)
}

// MigrateCouples imports bindings, resolving member names to user ids.
// A couple naming a user that was not imported is skipped, not fatal.
func (m *Migrator) MigrateCouples(ctx context.Context) error {
	if m.userIDsByName == nil {
		if err := m.loadUserIDs(ctx); err != nil {
			return err
		}
	}

	var legacy []MongoCouple
	if err := m.load(ctx, "couples", func(raw []byte) error {
		var mc MongoCouple
		if err := bson.Unmarshal(raw, &mc); err != nil {
			return err
		}
		legacy = append(legacy, mc)
		return nil
	}); err != nil {
		return err
	}

	stats := m.tableStats("couples")
	stats.Processed = len(legacy)

	seen := make(map[[2]int64]bool)
	var couples []*models.Couple
	for _, mc := range legacy {
		aID, okA := m.userIDsByName[mc.UserA]
		bID, okB := m.userIDsByName[mc.UserB]
		if !okA || !okB || aID == bID {
			stats.Skipped++
			slog.Warn("Skipping couple with unresolvable members",
				slog.String("type", "db"),
				slog.String("user_a", mc.UserA),
				slog.String("user_b", mc.UserB))
			continue
		}

		key := [2]int64{aID, bID}
		if aID > bID {
			key = [2]int64{bID, aID}
		}
		if seen[key] {
			stats.Skipped++
			continue
		}
		seen[key] = true

		created := mc.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}
		couples = append(couples, &models.Couple{
			UserAID:   aID,
			UserBID:   bID,
			CreatedAt: created,
		})
	}

	if len(couples) > 0 {
		if _, err := m.pgDB.NewInsert().Model(&couples).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert couples: %w", err)
		}
	}
	stats.Imported = len(couples)
	return nil
}

// MigrateDrawLogs imports draw history. Unknown rarities normalize to
// N rather than dropping the row; the text is what matters.
func (m *Migrator) MigrateDrawLogs(ctx context.Context) error {
	if m.userIDsByName == nil {
		if err := m.loadUserIDs(ctx); err != nil {
			return err
		}
	}

	var legacy []MongoDrawLog
	if err := m.load(ctx, "draw_logs", func(raw []byte) error {
		var ml MongoDrawLog
		if err := bson.Unmarshal(raw, &ml); err != nil {
			return err
		}
		legacy = append(legacy, ml)
		return nil
	}); err != nil {
		return err
	}

	stats := m.tableStats("draw_logs")
	stats.Processed = len(legacy)

	var logs []*models.DrawLog
	flush := func() error {
		if len(logs) == 0 {
			return nil
		}
		if _, err := m.pgDB.NewInsert().Model(&logs).Exec(ctx); err != nil {
			return fmt.Errorf("failed to insert draw log batch: %w", err)
		}
		stats.Imported += len(logs)
		logs = logs[:0]
		return nil
	}

	for _, ml := range legacy {
		userID, ok := m.userIDsByName[ml.UserName]
		if !ok || ml.CardText == "" {
			stats.Skipped++
			continue
		}

		rarity := ml.Rarity
		if !gacha.ValidRarity(rarity) {
			rarity = string(gacha.RarityN)
		}
		created := ml.CreatedAt
		if created.IsZero() {
			created = time.Now()
		}

		logs = append(logs, &models.DrawLog{
			UserID:    userID,
			CardText:  ml.CardText,
			Rarity:    rarity,
			CreatedAt: created,
		})
		if len(logs) >= m.batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	return flush()
}

// load streams every document of one legacy collection through decode,
// from live Mongo when configured, otherwise from a mongodump file.
func (m *Migrator) load(ctx context.Context, kind string, decode func([]byte) error) error {
	if m.mongoDB != nil {
		return m.loadFromMongo(ctx, kind, decode)
	}
	return m.loadFromDump(kind, decode)
}

func (m *Migrator) loadFromMongo(ctx context.Context, kind string, decode func([]byte) error) error {
	coll := m.mongoDB.Collection(m.collNames[kind])
	cur, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", kind, err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		if err := decode(cur.Current); err != nil {
			slog.Warn("Skipping undecodable document",
				slog.String("type", "db"),
				slog.String("collection", kind),
				slog.Any("error", err))
		}
	}
	return cur.Err()
}

// loadFromDump reads a mongodump .bson file: a concatenation of BSON
// documents, each prefixed by its own little-endian int32 length.
func (m *Migrator) loadFromDump(kind string, decode func([]byte) error) error {
	path := filepath.Join(m.dataDir, m.collNames[kind]+".bson")
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Warn("Dump file missing, skipping collection",
				slog.String("type", "db"),
				slog.String("path", path))
			return nil
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := bufio.NewReader(file)
	for {
		lengthBytes := make([]byte, 4)
		if _, err := io.ReadFull(reader, lengthBytes); err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read document length: %w", err)
		}

		length := int32(binary.LittleEndian.Uint32(lengthBytes))
		if length <= 4 {
			return fmt.Errorf("invalid document length: %d", length)
		}

		docBytes := make([]byte, length-4)
		if _, err := io.ReadFull(reader, docBytes); err != nil {
			return fmt.Errorf("failed to read document bytes: %w", err)
		}

		if err := decode(append(lengthBytes, docBytes...)); err != nil {
			slog.Warn("Skipping undecodable document",
				slog.String("type", "db"),
				slog.String("collection", kind),
				slog.Any("error", err))
		}
	}
}

func (m *Migrator) loadUserIDs(ctx context.Context) error {
	var users []*models.User
	if err := m.pgDB.NewSelect().
		Model(&users).
		Column("id", "name").
		Scan(ctx); err != nil {
		return fmt.Errorf("failed to load user ids: %w", err)
	}

	m.userIDsByName = make(map[string]int64, len(users))
	for _, u := range users {
		m.userIDsByName[u.Name] = u.ID
	}
	return nil
}

func (m *Migrator) tableStats(name string) *TableStats {
	if s, ok := m.stats.Tables[name]; ok {
		return s
	}
	s := &TableStats{TableName: name}
	m.stats.Tables[name] = s
	return s
}

func (m *Migrator) logFinalStats() {
	for _, s := range m.stats.Tables {
		slog.Info("Migration table summary",
			slog.String("type", "db"),
			slog.String("table", s.TableName),
			slog.Int("processed", s.Processed),
			slog.Int("imported", s.Imported),
			slog.Int("skipped", s.Skipped))
	}
	slog.Info("Migration finished",
		slog.String("type", "db"),
		slog.Duration("took", m.stats.EndTime.Sub(m.stats.StartTime)))
}
