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

//go:generate mockgen -source=./district.go -package=repomocks -destination=./mocks/district.mock.go DistrictRepository
type DistrictRepository interface {
	ActiveDistricts(ctx context.Context) ([]domain.District, error)
	FindByName(ctx context.Context, name string) (domain.District, error)
	FindByID(ctx context.Context, id int64) (domain.District, error)
	List(ctx context.Context) ([]domain.District, error)
	Save(ctx context.Context, d domain.District) (int64, error)
	Delete(ctx context.Context, id int64) error
}

type districtRepository struct {
	dao   dao.DistrictDAO
	cache cache.CatalogCache
	rt    *readThrough
	cfg   CacheConfig
}

func NewDistrictRepository(d dao.DistrictDAO, c cache.CatalogCache, cfg CacheConfig) DistrictRepository {
	return &districtRepository{dao: d, cache: c, rt: newReadThrough(c), cfg: cfg.withDefaults()}
}

func (r *districtRepository) ActiveDistricts(ctx context.Context) ([]domain.District, error) {
	return get(ctx, r.rt, cache.ActiveDistrictsKey, func(ctx context.Context) ([]domain.District, error) {
		entities, err := r.dao.List(ctx, true)
		return r.toDomains(entities), err
	}, func(ctx context.Context, ver cache.Version, val []domain.District) error {
		return r.cache.Set(ctx, cache.ActiveDistrictsKey, val, ver, r.cfg.ListExpiration)
	})
}

func (r *districtRepository) FindByName(ctx context.Context, name string) (domain.District, error) {
	d, err := r.dao.FindByName(ctx, name)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.District{}, domain.ErrDistrictNotFound
	}
	return r.toDomain(d), err
}

func (r *districtRepository) FindByID(ctx context.Context, id int64) (domain.District, error) {
	d, err := r.dao.FindByID(ctx, id)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.District{}, domain.ErrDistrictNotFound
	}
	return r.toDomain(d), err
}

func (r *districtRepository) List(ctx context.Context) ([]domain.District, error) {
	entities, err := r.dao.List(ctx, false)
	return r.toDomains(entities), err
}

func (r *districtRepository) Save(ctx context.Context, d domain.District) (int64, error) {
	id, err := r.dao.Save(ctx, dao.District{
		Id:             d.ID,
		Name:           d.Name,
		DeliveryCharge: d.DeliveryCharge,
		IsActive:       d.IsActive,
	})
	switch {
	case errors.Is(err, dao.ErrDuplicate):
		return 0, domain.ErrDuplicateName
	case errors.Is(err, dao.ErrRecordNotFound):
		return 0, domain.ErrDistrictNotFound
	}
	return id, err
}

func (r *districtRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *districtRepository) toDomains(entities []dao.District) []domain.District {
	return slice.Map(entities, func(idx int, src dao.District) domain.District {
		return r.toDomain(src)
	})
}

func (r *districtRepository) toDomain(d dao.District) domain.District {
	return domain.District{
		ID:             d.Id,
		Name:           d.Name,
		DeliveryCharge: d.DeliveryCharge,
		IsActive:       d.IsActive,
	}
}
