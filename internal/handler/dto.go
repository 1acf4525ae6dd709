package handler

import (
	"github.com/iliyamo/room-escape-reservation/internal/model"
	"github.com/iliyamo/room-escape-reservation/internal/service"
)

// listResponse wraps every collection response.
type listResponse[T any] struct {
	Data []T `json:"data"`
}

func listOf[S, T any](items []S, conv func(S) T) listResponse[T] {
	out := make([]T, 0, len(items))
	for _, it := range items {
		out = append(out, conv(it))
	}
	return listResponse[T]{Data: out}
}

type memberResponse struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func toMember(m model.Member) memberResponse {
	return memberResponse{ID: m.ID, Name: m.Name}
}

type themeResponse struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
}

func toTheme(t model.Theme) themeResponse {
	return themeResponse{ID: t.ID, Name: t.Name, Description: t.Description, Thumbnail: t.Thumbnail}
}

type timeResponse struct {
	ID      uint64      `json:"id"`
	StartAt model.Clock `json:"startAt"`
}

func toTime(t model.ReservationTime) timeResponse {
	return timeResponse{ID: t.ID, StartAt: t.StartAt}
}

type availabilityResponse struct {
	TimeID        uint64      `json:"timeId"`
	StartAt       model.Clock `json:"startAt"`
	AlreadyBooked bool        `json:"alreadyBooked"`
}

func toAvailability(a service.TimeAvailability) availabilityResponse {
	return availabilityResponse{TimeID: a.Time.ID, StartAt: a.Time.StartAt, AlreadyBooked: a.AlreadyBooked}
}

type reservationResponse struct {
	ID     uint64         `json:"id"`
	Member memberResponse `json:"member"`
	Date   model.Date     `json:"date"`
	Time   timeResponse   `json:"time"`
	Theme  themeResponse  `json:"theme"`
	Status string         `json:"status"`
}

func toReservation(r model.Reservation) reservationResponse {
	return reservationResponse{
		ID:     r.ID,
		Member: toMember(r.Member),
		Date:   r.Date,
		Time:   toTime(r.Time),
		Theme:  toTheme(r.Theme),
		Status: r.Status,
	}
}

// myReservationResponse is one row of the member's own reservation list.
type myReservationResponse struct {
	ReservationID uint64      `json:"reservationId"`
	Theme         string      `json:"theme"`
	Date          model.Date  `json:"date"`
	Time          model.Clock `json:"time"`
	Status        string      `json:"status"`
}

func toMyReservation(r model.Reservation) myReservationResponse {
	return myReservationResponse{
		ReservationID: r.ID,
		Theme:         r.Theme.Name,
		Date:          r.Date,
		Time:          r.Time.StartAt,
		Status:        r.StatusLabel(),
	}
}
