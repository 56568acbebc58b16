//go:build unit || e2e

package builder

import (
	"hotel-reservation/internal/domain/hotel"
	"hotel-reservation/internal/domain/reservation"
	"hotel-reservation/internal/domain/room"
	"hotel-reservation/internal/domain/system"
	reqdto "hotel-reservation/internal/handler/dto/request"
	"hotel-reservation/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomBatch struct {
	Count int
	Type  room.Type
}

type HotelBuilder struct {
	Name      string
	Rooms     []RoomBatch
	BasePrice float64
	Modifiers map[int]float64
}

func NewHotelBuilder() *HotelBuilder {
	return &HotelBuilder{
		Name:      "Plaza",
		Rooms:     []RoomBatch{{Count: 10, Type: room.TypeStandard}},
		Modifiers: map[int]float64{},
	}
}

// Build methods

// BuildSystem registers the hotel in a fresh reservation system.
func (b *HotelBuilder) BuildSystem() (*system.ReservationSystem, *hotel.Hotel, error) {
	sys := system.NewReservationSystem()
	h, err := b.BuildInto(sys)
	if err != nil {
		return nil, nil, err
	}
	return sys, h, nil
}

func (b *HotelBuilder) BuildInto(sys *system.ReservationSystem) (*hotel.Hotel, error) {
	h, err := sys.AddHotel(b.Name)
	if err != nil {
		return nil, err
	}
	for _, batch := range b.Rooms {
		if _, err := sys.ProvisionRooms(h, batch.Count, batch.Type); err != nil {
			return nil, err
		}
	}
	if b.BasePrice != 0 {
		if err := sys.UpdateBasePrice(h, b.BasePrice); err != nil {
			return nil, err
		}
	}
	for day, m := range b.Modifiers {
		sys.SetDatePriceModifier(h, day, m)
	}
	return h, nil
}

func (b *HotelBuilder) BuildDomain() (*hotel.Hotel, error) {
	_, h, err := b.BuildSystem()
	return h, err
}

func (b *HotelBuilder) BuildCreateRequestDTO() reqdto.CreateHotelRequest {
	return reqdto.CreateHotelRequest{Name: b.Name}
}

func (b *HotelBuilder) BuildView() *queries.HotelView {
	rooms := 0
	for _, batch := range b.Rooms {
		rooms += batch.Count
	}
	basePrice := room.DefaultBasePrice
	if b.BasePrice != 0 {
		basePrice = b.BasePrice
	}
	if rooms == 0 {
		basePrice = 0
	}
	return &queries.HotelView{
		ID:                 uuid.New(),
		Name:               b.Name,
		RoomCount:          rooms,
		AvailableRoomCount: rooms,
		BasePrice:          basePrice,
	}
}

func (b *HotelBuilder) BuildSummaryView() *queries.HotelSummaryView {
	byType := map[string]int{}
	for _, batch := range b.Rooms {
		byType[batch.Type.String()] += batch.Count
	}
	modifiers := make([]float64, reservation.LastDay)
	for i := range modifiers {
		modifiers[i] = hotel.DefaultModifier
	}
	for day, m := range b.Modifiers {
		modifiers[day-1] = m
	}
	return &queries.HotelSummaryView{
		HotelView:   *b.BuildView(),
		RoomsByType: byType,
		Modifiers:   modifiers,
	}
}

// Fluent builder methods
func (b *HotelBuilder) WithName(name string) *HotelBuilder {
	b.Name = name
	return b
}

func (b *HotelBuilder) WithRooms(count int, t room.Type) *HotelBuilder {
	b.Rooms = append(b.Rooms, RoomBatch{Count: count, Type: t})
	return b
}

func (b *HotelBuilder) WithoutRooms() *HotelBuilder {
	b.Rooms = nil
	return b
}

func (b *HotelBuilder) WithBasePrice(p float64) *HotelBuilder {
	b.BasePrice = p
	return b
}

func (b *HotelBuilder) WithModifier(day int, m float64) *HotelBuilder {
	b.Modifiers[day] = m
	return b
}
