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

package logistics

import (
	"github.com/ecodeclub/dokan/internal/logistics/internal/domain"
	"github.com/ecodeclub/dokan/internal/logistics/internal/service"
)

type (
	Manager        = service.Manager
	Provider       = domain.Provider
	Shipment       = domain.Shipment
	DispatchResult = domain.DispatchResult
	ProviderStatus = domain.ProviderStatus
)

const (
	ProviderPathao    = domain.ProviderPathao
	ProviderSteadfast = domain.ProviderSteadfast
	ProviderRedX      = domain.ProviderRedX
)

var (
	ErrUnknownProvider = domain.ErrUnknownProvider
	ErrConfiguration   = domain.ErrConfiguration
	ErrProvider        = domain.ErrProvider
)

func ParseProvider(s string) (Provider, error) {
	return domain.ParseProvider(s)
}

type Module struct {
	Svc Manager
}
