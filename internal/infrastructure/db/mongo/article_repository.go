package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/newsroom/news-api/internal/core/domain"
)

const articlesCollection = "articles"

const dateLayout = "2006-01-02"

// ArticleRepository is the MongoDB-backed article store. Publish dates are
// stored as YYYY-MM-DD strings so range filters compare lexicographically.
type ArticleRepository struct {
	coll *mongo.Collection
}

func NewArticleRepository(db *mongo.Database) *ArticleRepository {
	return &ArticleRepository{coll: db.Collection(articlesCollection)}
}

type mongoArticle struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Header      string             `bson:"header"`
	ShortDesc   string             `bson:"short_desc,omitempty"`
	Text        string             `bson:"text,omitempty"`
	PublishDate string             `bson:"publish_date,omitempty"`
	AuthorIDs   []string           `bson:"author_ids"`
	Keywords    []string           `bson:"keywords"`
}

func (r *ArticleRepository) Create(ctx context.Context, article *domain.Article) (*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, toDoc(article))
	if err != nil {
		return nil, fmt.Errorf("insert article: %w", err)
	}

	created := *article
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ArticleRepository) Update(ctx context.Context, article *domain.Article) error {
	oid, err := primitive.ObjectIDFromHex(article.ID)
	if err != nil {
		return domain.ErrArticleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.ReplaceOne(ctx, bson.M{"_id": oid}, toDoc(article))
	if err != nil {
		return fmt.Errorf("replace article: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrArticleNotFound
	}
	return nil
}

// Delete removes an article by id. A missing id is a no-op.
func (r *ArticleRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func (r *ArticleRepository) FindByID(ctx context.Context, id string) (*domain.Article, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrArticleNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ma mongoArticle
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ma); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return fromDoc(&ma), nil
}

func (r *ArticleRepository) FindByAuthorID(ctx context.Context, authorID string) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{"author_ids": authorID})
}

// FindByPeriod matches publish dates in [start, end], inclusive on both ends.
func (r *ArticleRepository) FindByPeriod(ctx context.Context, start, end time.Time) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{"publish_date": bson.M{
		"$gte": start.Format(dateLayout),
		"$lte": end.Format(dateLayout),
	}})
}

func (r *ArticleRepository) FindByKeyword(ctx context.Context, keyword string) ([]*domain.Article, error) {
	return r.find(ctx, bson.M{"keywords": keyword})
}

func (r *ArticleRepository) find(ctx context.Context, filter bson.M) ([]*domain.Article, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []mongoArticle
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode articles: %w", err)
	}

	articles := make([]*domain.Article, 0, len(docs))
	for i := range docs {
		articles = append(articles, fromDoc(&docs[i]))
	}
	return articles, nil
}

func toDoc(article *domain.Article) mongoArticle {
	doc := mongoArticle{
		Header:    article.Header,
		ShortDesc: article.ShortDesc,
		Text:      article.Text,
		AuthorIDs: article.AuthorIDs,
		Keywords:  article.Keywords,
	}
	if !article.PublishDate.IsZero() {
		doc.PublishDate = article.PublishDate.Format(dateLayout)
	}
	if doc.AuthorIDs == nil {
		doc.AuthorIDs = []string{}
	}
	if doc.Keywords == nil {
		doc.Keywords = []string{}
	}
	return doc
}

func fromDoc(doc *mongoArticle) *domain.Article {
	article := &domain.Article{
		ID:        doc.ID.Hex(),
		Header:    doc.Header,
		ShortDesc: doc.ShortDesc,
		Text:      doc.Text,
		AuthorIDs: doc.AuthorIDs,
		Keywords:  doc.Keywords,
	}
	if doc.PublishDate != "" {
		if d, err := time.Parse(dateLayout, doc.PublishDate); err == nil {
			article.PublishDate = d
		}
	}
	return article
}
