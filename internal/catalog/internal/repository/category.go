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
)

//go:generate mockgen -source=./category.go -package=repomocks -destination=./mocks/category.mock.go CategoryRepository
type CategoryRepository interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	FindByID(ctx context.Context, id int64) (domain.Category, error)
	Save(ctx context.Context, c domain.Category) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type categoryRepository struct {
	dao   dao.CategoryDAO
	cache cache.CatalogCache
	rt    *readThrough
	cfg   CacheConfig
}

func NewCategoryRepository(d dao.CategoryDAO, c cache.CatalogCache, cfg CacheConfig) CategoryRepository {
	return &categoryRepository{dao: d, cache: c, rt: newReadThrough(c), cfg: cfg.withDefaults()}
}

func (r *categoryRepository) Categories(ctx context.Context) ([]domain.Category, error) {
	return get(ctx, r.rt, cache.CategoriesKey, func(ctx context.Context) ([]domain.Category, error) {
		entities, err := r.dao.List(ctx)
		if err != nil {
			return nil, err
		}
		return slice.Map(entities, func(idx int, src dao.Category) domain.Category {
			return toDomainCategory(src)
		}), nil
	}, func(ctx context.Context, ver cache.Version, val []domain.Category) error {
		return r.cache.Set(ctx, cache.CategoriesKey, val, ver, r.cfg.ListExpiration)
	})
}

func (r *categoryRepository) FindByID(ctx context.Context, id int64) (domain.Category, error) {
	c, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Category{}, domain.ErrCategoryNotFound
	}
	return toDomainCategory(c), err
}

func (r *categoryRepository) Save(ctx context.Context, c domain.Category) (int64, error) {
	id, err := r.dao.Save(ctx, dao.Category{Id: c.ID, Name: c.Name, Slug: c.Slug})
	switch {
	case errors.Is(err, dao.ErrDuplicate):
		return 0, domain.ErrDuplicateName
	case errors.Is(err, dao.ErrRecordNotFound):
		return 0, domain.ErrCategoryNotFound
	}
	return id, err
}

func (r *categoryRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func toDomainCategory(c dao.Category) domain.Category {
	return domain.Category{ID: c.Id, Name: c.Name, Slug: c.Slug}
}
