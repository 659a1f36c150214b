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

package event

const orderEventName = "order_events"

type EventType string

const (
	EventTypeCreated       EventType = "created"
	EventTypeStatusChanged EventType = "status_changed"
	EventTypeDispatched    EventType = "dispatched"
	EventTypePaid          EventType = "paid"
)

// OrderEvent 订单生命周期中的关键变化，下游按 Type 区分
type OrderEvent struct {
	Type       EventType `json:"type"`
	OrderSN    string    `json:"orderSN"`
	BuyerID    int64     `json:"buyerID"`
	Status     string    `json:"status"`
	TotalPrice string    `json:"totalPrice"`
	Provider   string    `json:"provider,omitempty"`
	TrackingID string    `json:"trackingID,omitempty"`
	Utime      int64     `json:"utime"`
}
