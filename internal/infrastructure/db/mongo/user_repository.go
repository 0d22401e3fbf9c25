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

const collectionUsers = "users"

type UserRepository struct {
	col     *mongo.Collection
	timeout time.Duration
}

// NewUserRepository binds the repository to db. timeout bounds each
// operation; zero uses the package default.
func NewUserRepository(db *mongo.Database, timeout time.Duration) *UserRepository {
	return &UserRepository{col: db.Collection(collectionUsers), timeout: opTimeout(timeout)}
}

type portfolioDoc struct {
	Title string `bson:"title"`
	URL   string `bson:"url"`
}

type mentorProfileDoc struct {
	Bio            string         `bson:"bio,omitempty"`
	Subjects       []string       `bson:"subjects"`
	Tags           []string       `bson:"tags"`
	Portfolio      []portfolioDoc `bson:"portfolio"`
	HourlyRate     float64        `bson:"hourly_rate"`
	Languages      []string       `bson:"languages"`
	Timezone       string         `bson:"timezone,omitempty"`
	Certifications []string       `bson:"certifications"`
	Verified       bool           `bson:"verified"`
	ApprovedAt     *time.Time     `bson:"approved_at,omitempty"`
	Rating         float64        `bson:"rating"`
	RatingCount    int            `bson:"rating_count"`
}

type userDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	Name          string             `bson:"name"`
	Email         string             `bson:"email"`
	PasswordHash  string             `bson:"password_hash"`
	Role          string             `bson:"role"`
	AvatarURL     string             `bson:"avatar_url,omitempty"`
	Interests     []string           `bson:"interests"`
	Goals         []string           `bson:"goals"`
	Bio           string             `bson:"bio,omitempty"`
	Location      string             `bson:"location,omitempty"`
	Languages     []string           `bson:"languages"`
	MentorProfile *mentorProfileDoc  `bson:"mentor_profile,omitempty"`
	CreatedAt     time.Time          `bson:"created_at"`
	UpdatedAt     time.Time          `bson:"updated_at"`
}

// Create inserts a user. A duplicate email yields domain.ErrUserExists.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	doc := toUserDoc(u)
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrUserExists
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var doc userDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

// UpdateProfile applies upd with a single $set. Mentor profile edits also
// clear mentor_profile.verified; derived rating fields are never written here.
func (r *UserRepository) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate, at time.Time) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err = r.col.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": profileSet(upd, at)}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return doc.toDomain(), nil
}

func profileSet(upd ports.ProfileUpdate, at time.Time) bson.M {
	set := bson.M{"updated_at": at}
	setIf := func(key string, v *string) {
		if v != nil {
			set[key] = *v
		}
	}
	setSlice := func(key string, v []string) {
		if v != nil {
			set[key] = v
		}
	}

	setIf("name", upd.Name)
	setIf("bio", upd.Bio)
	setIf("location", upd.Location)
	setIf("avatar_url", upd.AvatarURL)
	setSlice("interests", upd.Interests)
	setSlice("goals", upd.Goals)
	setSlice("languages", upd.Languages)

	if m := upd.Mentor; m != nil {
		setIf("mentor_profile.bio", m.Bio)
		setIf("mentor_profile.timezone", m.Timezone)
		setSlice("mentor_profile.subjects", m.Subjects)
		setSlice("mentor_profile.tags", m.Tags)
		setSlice("mentor_profile.languages", m.Languages)
		setSlice("mentor_profile.certifications", m.Certifications)
		if m.HourlyRate != nil {
			set["mentor_profile.hourly_rate"] = *m.HourlyRate
		}
		if m.Portfolio != nil {
			items := make([]portfolioDoc, len(m.Portfolio))
			for i, p := range m.Portfolio {
				items[i] = portfolioDoc{Title: p.Title, URL: p.URL}
			}
			set["mentor_profile.portfolio"] = items
		}
		set["mentor_profile.verified"] = false
	}
	return set
}

// SetMentorRating writes both derived fields in one update.
func (r *UserRepository) SetMentorRating(ctx context.Context, mentorID string, s domain.RatingSummary) error {
	oid, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return domain.ErrMentorNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.col.UpdateOne(ctx,
		bson.M{"_id": oid, "role": domain.RoleMentor},
		bson.M{"$set": bson.M{
			"mentor_profile.rating":       s.Average,
			"mentor_profile.rating_count": s.Count,
		}},
	)
	if err != nil {
		return fmt.Errorf("set mentor rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMentorNotFound
	}
	return nil
}

func (r *UserRepository) ApproveMentor(ctx context.Context, mentorID string, at time.Time) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(mentorID)
	if err != nil {
		return nil, domain.ErrMentorNotFound
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc userDoc
	err = r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "role": domain.RoleMentor, "mentor_profile": bson.M{"$exists": true}},
		bson.M{"$set": bson.M{
			"mentor_profile.verified":    true,
			"mentor_profile.approved_at": at,
			"updated_at":                 at,
		}},
		opts,
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMentorNotFound
		}
		return nil, fmt.Errorf("approve mentor: %w", err)
	}
	return doc.toDomain(), nil
}

// ListMentors returns one page of mentors matching f, plus the total match count.
func (r *UserRepository) ListMentors(ctx context.Context, f ports.MentorFilter) ([]*domain.User, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := mentorFilter(f)
	total, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count mentors: %w", err)
	}

	opts := options.Find().SetSort(mentorSort(f))
	if f.Query != "" {
		opts.SetProjection(bson.M{"score": bson.M{"$meta": "textScore"}})
	}
	if f.Limit > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		opts.SetSkip(int64((page - 1) * f.Limit)).SetLimit(int64(f.Limit))
	}

	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find mentors: %w", err)
	}
	var docs []userDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, fmt.Errorf("decode mentors: %w", err)
	}

	out := make([]*domain.User, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, total, nil
}

func mentorFilter(f ports.MentorFilter) bson.M {
	filter := bson.M{"role": domain.RoleMentor}
	if f.Verified != nil {
		filter["mentor_profile.verified"] = *f.Verified
	}
	if f.MinRating > 0 {
		filter["mentor_profile.rating"] = bson.M{"$gte": f.MinRating}
	}
	if len(f.Subjects) > 0 {
		filter["mentor_profile.subjects"] = bson.M{"$in": f.Subjects}
	}
	if len(f.Tags) > 0 {
		filter["mentor_profile.tags"] = bson.M{"$in": f.Tags}
	}
	if f.Query != "" {
		filter["$text"] = bson.M{"$search": f.Query}
	}
	return filter
}

func mentorSort(f ports.MentorFilter) bson.D {
	switch {
	case f.SortBy == "rating":
		return bson.D{
			{Key: "mentor_profile.rating", Value: -1},
			{Key: "mentor_profile.rating_count", Value: -1},
			{Key: "_id", Value: 1},
		}
	case f.Query != "":
		return bson.D{{Key: "score", Value: bson.M{"$meta": "textScore"}}}
	default:
		return bson.D{{Key: "created_at", Value: -1}}
	}
}

func (r *UserRepository) CountByRole(ctx context.Context, role string) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	n, err := r.col.CountDocuments(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	return n, nil
}

// EnsureIndexes creates necessary indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, indexTimeout)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("idx_users_email").SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "role", Value: 1},
				{Key: "mentor_profile.verified", Value: 1},
				{Key: "mentor_profile.rating", Value: -1},
			},
			Options: options.Index().SetName("idx_users_mentor_rating"),
		},
		{
			Keys: bson.D{
				{Key: "name", Value: "text"},
				{Key: "mentor_profile.bio", Value: "text"},
				{Key: "mentor_profile.subjects", Value: "text"},
				{Key: "mentor_profile.tags", Value: "text"},
			},
			Options: options.Index().SetName("idx_users_mentor_text").SetWeights(bson.M{
				"name":                    5,
				"mentor_profile.subjects": 4,
				"mentor_profile.tags":     3,
				"mentor_profile.bio":      1,
			}),
		},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func toUserDoc(u *domain.User) userDoc {
	doc := userDoc{
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Role:         u.Role,
		AvatarURL:    u.AvatarURL,
		Interests:    nonNil(u.Interests),
		Goals:        nonNil(u.Goals),
		Bio:          u.Bio,
		Location:     u.Location,
		Languages:    nonNil(u.Languages),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
	if mp := u.MentorProfile; mp != nil {
		portfolio := make([]portfolioDoc, len(mp.Portfolio))
		for i, p := range mp.Portfolio {
			portfolio[i] = portfolioDoc{Title: p.Title, URL: p.URL}
		}
		doc.MentorProfile = &mentorProfileDoc{
			Bio:            mp.Bio,
			Subjects:       nonNil(mp.Subjects),
			Tags:           nonNil(mp.Tags),
			Portfolio:      portfolio,
			HourlyRate:     mp.HourlyRate,
			Languages:      nonNil(mp.Languages),
			Timezone:       mp.Timezone,
			Certifications: nonNil(mp.Certifications),
			Verified:       mp.Verified,
			ApprovedAt:     mp.ApprovedAt,
			Rating:         mp.Rating,
			RatingCount:    mp.RatingCount,
		}
	}
	return doc
}

func (d *userDoc) toDomain() *domain.User {
	u := &domain.User{
		ID:           d.ID.Hex(),
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Role:         d.Role,
		AvatarURL:    d.AvatarURL,
		Interests:    nonNil(d.Interests),
		Goals:        nonNil(d.Goals),
		Bio:          d.Bio,
		Location:     d.Location,
		Languages:    nonNil(d.Languages),
		CreatedAt:    d.CreatedAt.UTC(),
		UpdatedAt:    d.UpdatedAt.UTC(),
	}
	if mp := d.MentorProfile; mp != nil {
		portfolio := make([]domain.PortfolioItem, len(mp.Portfolio))
		for i, p := range mp.Portfolio {
			portfolio[i] = domain.PortfolioItem{Title: p.Title, URL: p.URL}
		}
		u.MentorProfile = &domain.MentorProfile{
			Bio:            mp.Bio,
			Subjects:       nonNil(mp.Subjects),
			Tags:           nonNil(mp.Tags),
			Portfolio:      portfolio,
			HourlyRate:     mp.HourlyRate,
			Languages:      nonNil(mp.Languages),
			Timezone:       mp.Timezone,
			Certifications: nonNil(mp.Certifications),
			Verified:       mp.Verified,
			ApprovedAt:     mp.ApprovedAt,
			Rating:         mp.Rating,
			RatingCount:    mp.RatingCount,
		}
	}
	return u
}

// nonNil keeps arrays as [] in both BSON and JSON.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
