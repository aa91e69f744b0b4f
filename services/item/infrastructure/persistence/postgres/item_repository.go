package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ghuser/itemstore/pkg/database"
	"github.com/ghuser/itemstore/pkg/events"
	itemdomain "github.com/ghuser/itemstore/services/item/domain"
	domainevents "github.com/ghuser/itemstore/services/item/domain/events"
	"github.com/ghuser/itemstore/services/item/domain/models"
)

const itemTable = "item"

// pgUniqueViolation is the PostgreSQL error code for unique constraint violations.
const pgUniqueViolation = "23505"

// psql builds queries with $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// selectColumns is the full projection used by every read.
var selectColumns = []string{
	"id",
	"is_active",
	"is_archived",
	"create_date_time",
	"created_by",
	"last_changed_date_time",
	"last_changed_by",
	"internal_comment",
	"name",
	"description",
}

// ItemRepository implements repositories.ItemRepository against PostgreSQL.
type ItemRepository struct {
	db  *database.Database
	bus *events.EventBus
}

// NewItemRepository returns an ItemRepository backed by the given connection
// pool and event bus. A nil bus disables event publishing (seed process).
func NewItemRepository(db *database.Database, bus *events.EventBus) *ItemRepository {
	return &ItemRepository{db: db, bus: bus}
}

// Save persists a new Item and publishes an ItemCreatedEvent within the same
// transaction. The database generates the ID; Save writes it back into item.
// Returns ErrItemAlreadyExists on unique constraint violations.
func (r *ItemRepository) Save(ctx context.Context, item *models.Item) error {
	query, args, err := psql.Insert(itemTable).
		Columns(
			"is_active",
			"is_archived",
			"create_date_time",
			"created_by",
			"last_changed_date_time",
			"last_changed_by",
			"internal_comment",
			"name",
			"description",
		).
		Values(
			item.IsActive,
			item.IsArchived,
			item.CreateDateTime,
			item.CreatedBy,
			item.LastChangedDateTime,
			item.LastChangedBy,
			item.InternalComment,
			item.Name.String(),
			item.Description,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert: %w", err)
	}

	return r.db.WithTx(ctx, func(tx *sql.Tx) error {
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&item.ID); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return itemdomain.ErrItemAlreadyExists
			}
			return fmt.Errorf("insert item: %w", err)
		}

		if r.bus != nil {
			if err := r.publishCreated(tx, item); err != nil {
				return fmt.Errorf("publish item created: %w", err)
			}
		}
		return nil
	})
}

// FindAll retrieves every item ordered by creation time, ID as tiebreaker.
// The explicit ORDER BY keeps list order stable across calls instead of
// leaking storage-engine accidents.
func (r *ItemRepository) FindAll(ctx context.Context) ([]*models.Item, error) {
	query, args, err := psql.Select(selectColumns...).
		From(itemTable).
		OrderBy("create_date_time ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	rows, err := r.db.DB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	items := make([]*models.Item, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}
	return items, nil
}

// GetByID retrieves an Item by ID. Returns ErrItemNotFound if not found.
func (r *ItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Item, error) {
	query, args, err := psql.Select(selectColumns...).
		From(itemTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build select: %w", err)
	}

	item, err := scanItem(r.db.DB().QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, itemdomain.ErrItemNotFound
		}
		return nil, fmt.Errorf("query item: %w", err)
	}
	return item, nil
}

func (r *ItemRepository) publishCreated(tx *sql.Tx, item *models.Item) error {
	event := domainevents.ItemCreatedEvent{
		EventID:     uuid.New(),
		Version:     1,
		ItemID:      item.ID,
		Name:        item.Name.String(),
		Description: item.Description,
		OccurredAt:  item.CreateDateTime,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal event: %w", err)
	}
	msg := message.NewMessage(watermill.NewUUID(), payload)
	msg.Metadata.Set("event_id", event.EventID.String())
	msg.Metadata.Set("event_version", "1")
	p, err := r.bus.NewTxPublisher(tx)
	if err != nil {
		return fmt.Errorf("create publisher: %w", err)
	}
	return p.Publish(domainevents.TopicItemCreated, msg)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*models.Item, error) {
	var item models.Item
	var name string
	if err := row.Scan(
		&item.ID,
		&item.IsActive,
		&item.IsArchived,
		&item.CreateDateTime,
		&item.CreatedBy,
		&item.LastChangedDateTime,
		&item.LastChangedBy,
		&item.InternalComment,
		&name,
		&item.Description,
	); err != nil {
		return nil, err
	}
	item.Name = models.ItemName(name)
	return &item, nil
}
