// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package repository

import (
	"context"
	"errors"

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/cache"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository/dao"
	"github.com/ecodeclub/ekit/slice"
	"golang.org/x/sync/errgroup"
)

const (
	featuredLimit = 12
	relatedLimit  = 8
)

//go:generate mockgen -source=./product.go -package=repomocks -destination=./mocks/product.mock.go ProductRepository
type ProductRepository interface {
	// 以下走缓存
	ProductDetail(ctx context.Context, id int64) (domain.Product, error)
	ProductPage(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	CategoryProducts(ctx context.Context, cid int64, offset, limit int) ([]domain.Product, int64, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	RelatedProducts(ctx context.Context, pid int64) ([]domain.Product, error)

	// 以下直接读写数据库
	FindByID(ctx context.Context, id int64) (domain.Product, error)
	FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error)
	List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	Save(ctx context.Context, p domain.Product) (int64, error)
	Delete(ctx context.Context, id int64) error
	CountByCategory(ctx context.Context, cid int64) (int64, error)
	DecrementStock(ctx context.Context, item domain.StockItem) error
}

type productPage struct {
	Products []domain.Product `json:"products"`
	Total    int64            `json:"total"`
}

type productRepository struct {
	dao         dao.ProductDAO
	categoryDAO dao.CategoryDAO
	cache       cache.CatalogCache
	rt          *readThrough
	cfg         CacheConfig
}

func NewProductRepository(d dao.ProductDAO, cd dao.CategoryDAO, c cache.CatalogCache, cfg CacheConfig) ProductRepository {
	return &productRepository{
		dao:         d,
		categoryDAO: cd,
		cache:       c,
		rt:          newReadThrough(c),
		cfg:         cfg.withDefaults(),
	}
}

func (r *productRepository) ProductDetail(ctx context.Context, id int64) (domain.Product, error) {
	key := cache.ProductKey(id)
	return get(ctx, r.rt, key, func(ctx context.Context) (domain.Product, error) {
		return r.FindByID(ctx, id)
	}, func(ctx context.Context, ver cache.Version, val domain.Product) error {
		// 详情里带着分类名字，分类变更时需要一起删除
		return r.cache.SetInGroup(ctx, cache.CategoryProductsGroup(val.Category.ID), key, val, ver, r.cfg.ProductExpiration)
	})
}

func (r *productRepository) ProductPage(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	key := cache.ProductPageKey(offset, limit)
	page, err := get(ctx, r.rt, key, func(ctx context.Context) (productPage, error) {
		products, total, err := r.List(ctx, offset, limit)
		return productPage{Products: products, Total: total}, err
	}, func(ctx context.Context, ver cache.Version, val productPage) error {
		return r.cache.SetInGroup(ctx, cache.ProductPagesGroup, key, val, ver, r.cfg.ListExpiration)
	})
	return page.Products, page.Total, err
}

func (r *productRepository) CategoryProducts(ctx context.Context, cid int64, offset, limit int) ([]domain.Product, int64, error) {
	key := cache.CategoryProductsKey(cid, offset, limit)
	page, err := get(ctx, r.rt, key, func(ctx context.Context) (productPage, error) {
		var (
			eg       errgroup.Group
			entities []dao.Product
			total    int64
		)
		eg.Go(func() error {
			var err error
			entities, err = r.dao.ListByCategory(ctx, cid, offset, limit)
			return err
		})
		eg.Go(func() error {
			var err error
			total, err = r.dao.CountByCategory(ctx, cid)
			return err
		})
		if err := eg.Wait(); err != nil {
			return productPage{}, err
		}
		products, err := r.toDomains(ctx, entities)
		return productPage{Products: products, Total: total}, err
	}, func(ctx context.Context, ver cache.Version, val productPage) error {
		return r.cache.SetInGroup(ctx, cache.CategoryProductsGroup(cid), key, val, ver, r.cfg.ListExpiration)
	})
	return page.Products, page.Total, err
}

func (r *productRepository) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return get(ctx, r.rt, cache.FeaturedProductsKey, func(ctx context.Context) ([]domain.Product, error) {
		entities, err := r.dao.ListFeatured(ctx, featuredLimit)
		if err != nil {
			return nil, err
		}
		return r.toDomains(ctx, entities)
	}, func(ctx context.Context, ver cache.Version, val []domain.Product) error {
		return r.cache.Set(ctx, cache.FeaturedProductsKey, val, ver, r.cfg.ListExpiration)
	})
}

func (r *productRepository) RelatedProducts(ctx context.Context, pid int64) ([]domain.Product, error) {
	p, err := r.ProductDetail(ctx, pid)
	if err != nil {
		return nil, err
	}
	key := cache.RelatedProductsKey(pid)
	return get(ctx, r.rt, key, func(ctx context.Context) ([]domain.Product, error) {
		entities, err := r.dao.ListRelated(ctx, p.Category.ID, pid, relatedLimit)
		if err != nil {
			return nil, err
		}
		return r.toDomains(ctx, entities)
	}, func(ctx context.Context, ver cache.Version, val []domain.Product) error {
		return r.cache.SetInGroup(ctx, cache.RelatedProductsGroup(p.Category.ID), key, val, ver, r.cfg.ListExpiration)
	})
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (domain.Product, error) {
	entity, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Product{}, domain.ErrProductNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	res, err := r.toDomains(ctx, []dao.Product{entity})
	if err != nil {
		return domain.Product{}, err
	}
	return res[0], nil
}

func (r *productRepository) FindByIDs(ctx context.Context, ids []int64) ([]domain.Product, error) {
	entities, err := r.dao.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return r.toDomains(ctx, entities)
}

func (r *productRepository) List(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	var (
		eg       errgroup.Group
		entities []dao.Product
		total    int64
	)
	eg.Go(func() error {
		var err error
		entities, err = r.dao.List(ctx, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = r.dao.Count(ctx)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, 0, err
	}
	products, err := r.toDomains(ctx, entities)
	return products, total, err
}

func (r *productRepository) Save(ctx context.Context, p domain.Product) (int64, error) {
	id, err := r.dao.Save(ctx, r.toEntity(p))
	switch {
	case errors.Is(err, dao.ErrDuplicate):
		return 0, domain.ErrDuplicateName
	case errors.Is(err, dao.ErrRecordNotFound):
		return 0, domain.ErrProductNotFound
	}
	return id, err
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *productRepository) CountByCategory(ctx context.Context, cid int64) (int64, error) {
	return r.dao.CountByCategory(ctx, cid)
}

func (r *productRepository) DecrementStock(ctx context.Context, item domain.StockItem) error {
	ok, err := r.dao.DecrementStock(ctx, item.ProductID, item.Quantity)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrInsufficientStock
	}
	return nil
}

// toDomains 补全分类信息，分类被删除时只保留分类 ID
func (r *productRepository) toDomains(ctx context.Context, entities []dao.Product) ([]domain.Product, error) {
	if len(entities) == 0 {
		return []domain.Product{}, nil
	}
	seen := make(map[int64]struct{}, len(entities))
	cids := make([]int64, 0, len(entities))
	for _, e := range entities {
		if _, ok := seen[e.CategoryId]; !ok {
			seen[e.CategoryId] = struct{}{}
			cids = append(cids, e.CategoryId)
		}
	}
	categories, err := r.categoryDAO.FindByIDs(ctx, cids)
	if err != nil {
		return nil, err
	}
	cm := slice.ToMap(categories, func(element dao.Category) int64 {
		return element.Id
	})
	return slice.Map(entities, func(idx int, src dao.Product) domain.Product {
		c, ok := cm[src.CategoryId]
		if !ok {
			c = dao.Category{Id: src.CategoryId}
		}
		return domain.Product{
			ID:          src.Id,
			Name:        src.Name,
			Slug:        src.Slug,
			Description: src.Description,
			Image:       src.Image,
			Price:       src.Price,
			Stock:       src.Stock,
			Category:    toDomainCategory(c),
			Featured:    src.Featured,
			Ctime:       src.Ctime,
			Utime:       src.Utime,
		}
	}), nil
}

func (r *productRepository) toEntity(p domain.Product) dao.Product {
	return dao.Product{
		Id:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		Image:       p.Image,
		Price:       p.Price,
		Stock:       p.Stock,
		CategoryId:  p.Category.ID,
		Featured:    p.Featured,
	}
}
