package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/rogerio-castellano/bowling-catalog/internal/models"
	"github.com/rogerio-castellano/bowling-catalog/internal/query"
)

type MongoCatalogRepository struct {
	products   *mongo.Collection
	categories *mongo.Collection
	timeout    time.Duration
}

func NewMongoCatalogRepository(database *mongo.Database, productsCollection, categoriesCollection string, timeout time.Duration) *MongoCatalogRepository {
	return &MongoCatalogRepository{
		products:   database.Collection(productsCollection),
		categories: database.Collection(categoriesCollection),
		timeout:    timeout,
	}
}

func (r *MongoCatalogRepository) Find(ctx context.Context, d query.Descriptor) ([]models.Product, error) {
	filter, err := mongoFilter(d.Filter, productKeys)
	if err != nil {
		return nil, err
	}
	sort, err := mongoSort(d.Sort, productKeys)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetSort(sort)
	if d.Window.Offset > 0 {
		opts.SetSkip(int64(d.Window.Offset))
	}
	if d.Window.Limit > 0 {
		opts.SetLimit(int64(d.Window.Limit))
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.products.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find products: %w", err)
	}

	products := []models.Product{}
	if err := cur.All(ctx, &products); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}
	return products, nil
}

func (r *MongoCatalogRepository) Count(ctx context.Context, filter query.Predicate) (int64, error) {
	doc, err := mongoFilter(filter, productKeys)
	if err != nil {
		return 0, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	n, err := r.products.CountDocuments(ctx, doc)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return n, nil
}

func (r *MongoCatalogRepository) FindByID(ctx context.Context, id int) (models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var p models.Product
	err := r.products.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrProductNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("find product %d: %w", id, err)
	}
	return p, nil
}

func (r *MongoCatalogRepository) FindCategories(ctx context.Context, filter query.Predicate) ([]models.Category, error) {
	doc, err := mongoFilter(filter, categoryKeys)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.categories.Find(ctx, doc, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find categories: %w", err)
	}

	categories := []models.Category{}
	if err := cur.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("decode categories: %w", err)
	}
	return categories, nil
}

func (r *MongoCatalogRepository) Insert(ctx context.Context, p models.Product) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.products.InsertOne(ctx, p); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatedValueUnique
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

func (r *MongoCatalogRepository) Replace(ctx context.Context, id int, p models.Product) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	p.ID = id
	res, err := r.products.ReplaceOne(ctx, bson.D{{Key: "_id", Value: id}}, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return 0, ErrDuplicatedValueUnique
		}
		return 0, fmt.Errorf("replace product %d: %w", id, err)
	}
	return res.MatchedCount, nil
}

func (r *MongoCatalogRepository) Delete(ctx context.Context, id int) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	res, err := r.products.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return 0, fmt.Errorf("delete product %d: %w", id, err)
	}
	return res.DeletedCount, nil
}

func (r *MongoCatalogRepository) InsertCategory(ctx context.Context, c models.Category) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if _, err := r.categories.InsertOne(ctx, c); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return ErrDuplicatedValueUnique
		}
		return fmt.Errorf("insert category: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique name indexes and the category lookup index.
func (r *MongoCatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	_, err := r.categories.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "ManufacturerName", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create category index: %w", err)
	}

	_, err = r.products.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "Name", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "CategoryId", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create product indexes: %w", err)
	}
	return nil
}
