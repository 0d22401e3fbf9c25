package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/skillsphere/mentorship-api/internal/core/domain"
	"github.com/skillsphere/mentorship-api/internal/core/ports"
)

const collectionSessions = "sessions"

type SessionRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

// NewSessionRepository binds the repository to db. timeout bounds each
// operation; zero uses the package default.
func NewSessionRepository(db *mongo.Database, timeout time.Duration) *SessionRepository {
	return &SessionRepository{col: db.Collection(collectionSessions), timeout: opTimeout(timeout)}
}

type resourceDoc struct {
	Title string `bson:"title"`
	URL   string `bson:"url"`
}

type historyDoc struct {
	Status  string    `bson:"status"`
	At      time.Time `bson:"at"`
	ActorID string    `bson:"actor_id,omitempty"`
}

// sessionDoc stores ends_at alongside scheduled_at so that overlap queries are
// a single indexed range filter.
type sessionDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	MentorID        string             `bson:"mentor_id"`
	LearnerID       string             `bson:"learner_id"`
	ScheduledAt     time.Time          `bson:"scheduled_at"`
	EndsAt          time.Time          `bson:"ends_at"`
	DurationMinutes int                `bson:"duration_minutes"`
	Status          string             `bson:"status"`
	Channel         string             `bson:"channel"`
	MeetingLink     string             `bson:"meeting_link,omitempty"`
	Notes           string             `bson:"notes,omitempty"`
	Resources       []resourceDoc      `bson:"resources,omitempty"`
	Price           float64            `bson:"price"`
	Rating          int                `bson:"rating,omitempty"`
	Review          string             `bson:"review,omitempty"`
	IsRated         bool               `bson:"is_rated"`
	RatedAt         *time.Time         `bson:"rated_at,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at"`
	StatusHistory   []historyDoc       `bson:"status_history"`
}

// Create inserts a new session document and sets s.ID.
func (r *SessionRepository) Create(ctx context.Context, s *domain.Session) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toSessionDoc(s)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert session: %w", err)
	}
	s.ID = doc.ID.Hex()
	return nil
}

func (r *SessionRepository) FindByID(ctx context.Context, id string) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc sessionDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("find session: %w", err)
	}
	return doc.toDomain(), nil
}

// HasActiveOverlap runs the half-open interval test
// scheduled_at < w.End AND ends_at > w.Start over active sessions.
func (r *SessionRepository) HasActiveOverlap(ctx context.Context, mentorID string, w domain.Window) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, overlapFilter(mentorID, w), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("overlap check: %w", err)
	}
	return n > 0, nil
}

func overlapFilter(mentorID string, w domain.Window) bson.M {
	active := make([]string, len(domain.ActiveStatuses))
	for i, s := range domain.ActiveStatuses {
		active[i] = string(s)
	}
	return bson.M{
		"mentor_id":    mentorID,
		"status":       bson.M{"$in": active},
		"scheduled_at": bson.M{"$lt": w.End},
		"ends_at":      bson.M{"$gt": w.Start},
	}
}

// Transition atomically moves the session from t.From to t.To and appends a
// history entry. If the stored status is no longer t.From nothing is written.
func (r *SessionRepository) Transition(ctx context.Context, t ports.SessionTransition) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(t.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	set := bson.M{"status": string(t.To), "updated_at": t.At}
	if t.MeetingLink != "" {
		set["meeting_link"] = t.MeetingLink
	}
	update := bson.M{
		"$set":  set,
		"$push": bson.M{"status_history": historyDoc{Status: string(t.To), At: t.At, ActorID: t.ActorID}},
	}

	return r.conditionalUpdate(ctx, oid, bson.M{"status": string(t.From)}, update, domain.ErrInvalidTransition)
}

// MarkRated records a rating only while the session is completed and unrated.
func (r *SessionRepository) MarkRated(ctx context.Context, in ports.SessionRating) (*domain.Session, error) {
	oid, err := primitive.ObjectIDFromHex(in.SessionID)
	if err != nil {
		return nil, domain.ErrSessionNotFound
	}

	update := bson.M{"$set": bson.M{
		"rating":     in.Rating,
		"review":     in.Review,
		"is_rated":   true,
		"rated_at":   in.At,
		"updated_at": in.At,
	}}
	guard := bson.M{"status": string(domain.StatusCompleted), "is_rated": bson.M{"$ne": true}}

	return r.conditionalUpdate(ctx, oid, guard, update, domain.ErrNotRatable)
}

// conditionalUpdate applies update to the session only if guard still matches.
// When it does not, errMismatch is returned for an existing session and
// ErrSessionNotFound otherwise.
func (r *SessionRepository) conditionalUpdate(ctx context.Context, oid primitive.ObjectID, guard, update bson.M, errMismatch error) (*domain.Session, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{"_id": oid}
	for k, v := range guard {
		filter[k] = v
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc sessionDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("update session: %w", err)
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid}, options.Count().SetLimit(1))
	if err != nil {
		return nil, fmt.Errorf("update session: %w", err)
	}
	if n == 0 {
		return nil, domain.ErrSessionNotFound
	}
	return nil, errMismatch
}

// RatingsForMentor returns every recorded rating for mentorID.
func (r *SessionRepository) RatingsForMentor(ctx context.Context, mentorID string) ([]int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"rating": 1})
	cur, err := r.col.Find(ctx, bson.M{"mentor_id": mentorID, "is_rated": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("find ratings: %w", err)
	}
	var rows []struct {
		Rating int `bson:"rating"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, fmt.Errorf("decode ratings: %w", err)
	}

	out := make([]int, len(rows))
	for i, row := range rows {
		out[i] = row.Rating
	}
	return out, nil
}

// List returns sessions matching f, newest scheduled first.
func (r *SessionRepository) List(ctx context.Context, f ports.SessionFilter) ([]*domain.Session, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := sessionFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	opts := options.Find().SetSort(bson.D{{Key: "scheduled_at", Value: -1}})
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * f.Limit)).SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find sessions: %w", err)
	}
	var docs []sessionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode sessions: %w", err)
	}

	out := make([]*domain.Session, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, total, nil
}

func sessionFilter(f ports.SessionFilter) bson.M {
	filter := bson.M{}
	if f.MentorID != "" {
		filter["mentor_id"] = f.MentorID
	}
	if f.LearnerID != "" {
		filter["learner_id"] = f.LearnerID
	}
	if f.ParticipantID != "" {
		filter["$or"] = bson.A{
			bson.M{"mentor_id": f.ParticipantID},
			bson.M{"learner_id": f.ParticipantID},
		}
	}
	if f.Status != "" {
		filter["status"] = f.Status
	}
	return filter
}

func (r *SessionRepository) Count(ctx context.Context) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("count sessions: %w", err)
	}
	return n, nil
}

// AverageRating averages every recorded session rating on the platform.
func (r *SessionRepository) AverageRating(ctx context.Context) (float64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"is_rated": true}}},
		{{Key: "$group", Value: bson.M{"_id": nil, "avg": bson.M{"$avg": "$rating"}}}},
	}
	cur, err := r.col.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	var rows []struct {
		Avg float64 `bson:"avg"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return 0, fmt.Errorf("average rating: %w", err)
	}
	if len(rows) == 0 {
		return 0, nil
	}
	return rows[0].Avg, nil
}

// EnsureIndexes creates necessary indexes on the sessions collection.
func (r *SessionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "mentor_id", Value: 1},
				{Key: "status", Value: 1},
				{Key: "scheduled_at", Value: 1},
				{Key: "ends_at", Value: 1},
			},
			Options: options.Index().SetName("idx_sessions_mentor_window"),
		},
		{
			Keys:    bson.D{{Key: "learner_id", Value: 1}, {Key: "scheduled_at", Value: -1}},
			Options: options.Index().SetName("idx_sessions_learner"),
		},
		{
			Keys:    bson.D{{Key: "mentor_id", Value: 1}, {Key: "is_rated", Value: 1}},
			Options: options.Index().SetName("idx_sessions_mentor_ratings"),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toSessionDoc(s *domain.Session) sessionDoc {
	history := make([]historyDoc, len(s.StatusHistory))
	for i, h := range s.StatusHistory {
		history[i] = historyDoc{Status: string(h.Status), At: h.At, ActorID: h.ActorID}
	}
	var resources []resourceDoc
	for _, r := range s.Resources {
		resources = append(resources, resourceDoc{Title: r.Title, URL: r.URL})
	}
	return sessionDoc{
		MentorID:        s.MentorID,
		LearnerID:       s.LearnerID,
		ScheduledAt:     s.ScheduledAt,
		EndsAt:          s.EndsAt(),
		DurationMinutes: s.DurationMinutes,
		Status:          string(s.Status),
		Channel:         string(s.Channel),
		MeetingLink:     s.MeetingLink,
		Notes:           s.Notes,
		Resources:       resources,
		Price:           s.Price,
		Rating:          s.Rating,
		Review:          s.Review,
		IsRated:         s.IsRated,
		RatedAt:         s.RatedAt,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
		StatusHistory:   history,
	}
}

func (d *sessionDoc) toDomain() *domain.Session {
	history := make([]domain.StatusHistoryEntry, len(d.StatusHistory))
	for i, h := range d.StatusHistory {
		history[i] = domain.StatusHistoryEntry{Status: domain.SessionStatus(h.Status), At: h.At.UTC(), ActorID: h.ActorID}
	}
	var resources []domain.Resource
	for _, r := range d.Resources {
		resources = append(resources, domain.Resource{Title: r.Title, URL: r.URL})
	}
	var ratedAt *time.Time
	if d.RatedAt != nil {
		t := d.RatedAt.UTC()
		ratedAt = &t
	}
	return &domain.Session{
		ID:              d.ID.Hex(),
		MentorID:        d.MentorID,
		LearnerID:       d.LearnerID,
		ScheduledAt:     d.ScheduledAt.UTC(),
		DurationMinutes: d.DurationMinutes,
		Status:          domain.SessionStatus(d.Status),
		Channel:         domain.Channel(d.Channel),
		MeetingLink:     d.MeetingLink,
		Notes:           d.Notes,
		Resources:       resources,
		Price:           d.Price,
		Rating:          d.Rating,
		Review:          d.Review,
		IsRated:         d.IsRated,
		RatedAt:         ratedAt,
		CreatedAt:       d.CreatedAt.UTC(),
		UpdatedAt:       d.UpdatedAt.UTC(),
		StatusHistory:   history,
	}
}
