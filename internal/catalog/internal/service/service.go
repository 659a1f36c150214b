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

package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/ecodeclub/dokan/internal/catalog/internal/domain"
	"github.com/ecodeclub/dokan/internal/catalog/internal/repository"
	"github.com/ecodeclub/ekit/slice"
	"github.com/lithammer/shortuuid/v4"
)

// Service 面向买家的只读接口以及下单校验需要的数据
//
//go:generate mockgen -source=./service.go -package=catalogmocks -destination=../../mocks/catalog.mock.go Service,AdminService
type Service interface {
	ProductDetail(ctx context.Context, id int64) (domain.Product, error)
	ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	ListCategoryProducts(ctx context.Context, cid int64, offset, limit int) ([]domain.Product, int64, error)
	FeaturedProducts(ctx context.Context) ([]domain.Product, error)
	RelatedProducts(ctx context.Context, pid int64) ([]domain.Product, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	ActiveDistricts(ctx context.Context) ([]domain.District, error)

	// FindProductsByIDs 直接读库，不存在的商品不会出现在结果里
	FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error)
	// FindDistrictByName 直接读库
	FindDistrictByName(ctx context.Context, name string) (domain.District, error)
}

type AdminService interface {
	ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error)
	SaveProduct(ctx context.Context, p domain.Product) (int64, error)
	DeleteProduct(ctx context.Context, id int64) error
	SaveCategory(ctx context.Context, c domain.Category) (int64, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListDistricts(ctx context.Context) ([]domain.District, error)
	SaveDistrict(ctx context.Context, d domain.District) (int64, error)
	DeleteDistrict(ctx context.Context, id int64) error
}

type service struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	districtRepo repository.DistrictRepository
}

func NewService(pr repository.ProductRepository,
	cr repository.CategoryRepository,
	dr repository.DistrictRepository) Service {
	return &service{productRepo: pr, categoryRepo: cr, districtRepo: dr}
}

func (s *service) ProductDetail(ctx context.Context, id int64) (domain.Product, error) {
	return s.productRepo.ProductDetail(ctx, id)
}

func (s *service) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	return s.productRepo.ProductPage(ctx, offset, limit)
}

func (s *service) ListCategoryProducts(ctx context.Context, cid int64, offset, limit int) ([]domain.Product, int64, error) {
	return s.productRepo.CategoryProducts(ctx, cid, offset, limit)
}

func (s *service) FeaturedProducts(ctx context.Context) ([]domain.Product, error) {
	return s.productRepo.FeaturedProducts(ctx)
}

func (s *service) RelatedProducts(ctx context.Context, pid int64) ([]domain.Product, error) {
	return s.productRepo.RelatedProducts(ctx, pid)
}

func (s *service) Categories(ctx context.Context) ([]domain.Category, error) {
	return s.categoryRepo.Categories(ctx)
}

func (s *service) ActiveDistricts(ctx context.Context) ([]domain.District, error) {
	return s.districtRepo.ActiveDistricts(ctx)
}

func (s *service) FindProductsByIDs(ctx context.Context, ids []int64) (map[int64]domain.Product, error) {
	products, err := s.productRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.ToMap(products, func(element domain.Product) int64 {
		return element.ID
	}), nil
}

func (s *service) FindDistrictByName(ctx context.Context, name string) (domain.District, error) {
	return s.districtRepo.FindByName(ctx, name)
}

type adminService struct {
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	districtRepo repository.DistrictRepository
	invalidator  *Invalidator
}

func NewAdminService(pr repository.ProductRepository,
	cr repository.CategoryRepository,
	dr repository.DistrictRepository,
	invalidator *Invalidator) AdminService {
	return &adminService{productRepo: pr, categoryRepo: cr, districtRepo: dr, invalidator: invalidator}
}

func (s *adminService) ListProducts(ctx context.Context, offset, limit int) ([]domain.Product, int64, error) {
	return s.productRepo.List(ctx, offset, limit)
}

func (s *adminService) SaveProduct(ctx context.Context, p domain.Product) (int64, error) {
	if err := p.Validate(); err != nil {
		return 0, err
	}
	if _, err := s.categoryRepo.FindByID(ctx, p.Category.ID); err != nil {
		return 0, err
	}
	var beforeCategory int64
	if p.ID > 0 {
		before, err := s.productRepo.FindByID(ctx, p.ID)
		if err != nil {
			return 0, err
		}
		beforeCategory = before.Category.ID
	}
	if p.Slug == "" {
		p.Slug = slugify(p.Name)
	}
	id, err := s.productRepo.Save(ctx, p)
	if err != nil {
		return 0, err
	}
	s.invalidator.ProductChanged(ctx, id, beforeCategory, p.Category.ID)
	return id, nil
}

func (s *adminService) DeleteProduct(ctx context.Context, id int64) error {
	before, err := s.productRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err = s.productRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.ProductChanged(ctx, id, before.Category.ID, before.Category.ID)
	return nil
}

func (s *adminService) SaveCategory(ctx context.Context, c domain.Category) (int64, error) {
	if c.Name == "" {
		return 0, domain.ErrInvalidCategory
	}
	if c.Slug == "" {
		c.Slug = slugify(c.Name)
	}
	id, err := s.categoryRepo.Save(ctx, c)
	if err != nil {
		return 0, err
	}
	s.invalidator.CategoryChanged(ctx, id)
	return id, nil
}

func (s *adminService) DeleteCategory(ctx context.Context, id int64) error {
	cnt, err := s.productRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if cnt > 0 {
		return fmt.Errorf("%w: category_id=%d, products=%d", domain.ErrCategoryInUse, id, cnt)
	}
	if err = s.categoryRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.CategoryChanged(ctx, id)
	return nil
}

func (s *adminService) ListDistricts(ctx context.Context) ([]domain.District, error) {
	return s.districtRepo.List(ctx)
}

func (s *adminService) SaveDistrict(ctx context.Context, d domain.District) (int64, error) {
	if err := d.Validate(); err != nil {
		return 0, err
	}
	id, err := s.districtRepo.Save(ctx, d)
	if err != nil {
		return 0, err
	}
	s.invalidator.DistrictChanged(ctx)
	return id, nil
}

func (s *adminService) DeleteDistrict(ctx context.Context, id int64) error {
	if err := s.districtRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidator.DistrictChanged(ctx)
	return nil
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// slugify 名称转成 slug，加随机后缀避免重名
func slugify(name string) string {
	base := strings.Trim(nonSlugChars.ReplaceAllString(strings.ToLower(name), "-"), "-")
	suffix := strings.ToLower(shortuuid.New()[:6])
	if base == "" {
		return suffix
	}
	return base + "-" + suffix
}
