package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/zabeloliver/room-monitor/roomApi/roomStructs"
	"github.com/zabeloliver/room-monitor/roomApp/roomScreens"
)

type metrics struct {
	roomTemperature          *prometheus.GaugeVec
	roomHumidity             *prometheus.GaugeVec
	roomPreferredTemperature *prometheus.GaugeVec
	roomPreferredHumidity    *prometheus.GaugeVec
	directoryFetches         *prometheus.CounterVec
}

func NewMetrics(reg prometheus.Registerer) *metrics {
	m := &metrics{
		roomTemperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "room_temperature",
				Help: "Current room temperature in degree celsius.",
			},
			[]string{"id", "room"}),
		roomHumidity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "room_humidity",
				Help: "Current room humidity in percent.",
			},
			[]string{"id", "room"},
		),
		roomPreferredTemperature: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "room_preferred_temperature",
				Help: "Preferred room temperature of the resident in degree celsius.",
			},
			[]string{"id", "room"},
		),
		roomPreferredHumidity: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "room_preferred_humidity",
				Help: "Preferred room humidity of the resident in percent.",
			},
			[]string{"id", "room"},
		),
		directoryFetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "room_directory_fetches_total",
				Help: "Room directory fetches by outcome.",
			},
			[]string{"outcome"},
		),
	}
	reg.MustRegister(m.roomTemperature)
	reg.MustRegister(m.roomHumidity)
	reg.MustRegister(m.roomPreferredTemperature)
	reg.MustRegister(m.roomPreferredHumidity)
	reg.MustRegister(m.directoryFetches)
	return m
}

// writeRoomsToMetrics sets the gauges for every numeric reading in rooms.
func (m *metrics) writeRoomsToMetrics(rooms []roomStructs.Room) {
	for _, r := range rooms {
		set(m.roomTemperature, r, r.Temperature)
		set(m.roomHumidity, r, r.Humidity)
		set(m.roomPreferredTemperature, r, r.PreferredTemp)
		set(m.roomPreferredHumidity, r, r.PreferredHumidity)
	}
}

func set(g *prometheus.GaugeVec, r roomStructs.Room, reading roomStructs.Reading) {
	if v, ok := reading.Float(); ok {
		g.WithLabelValues(r.Id, r.Title()).Set(v)
	}
}

// instrumentedDirectory counts every fetch and feeds successful ones into
// the room gauges.
type instrumentedDirectory struct {
	next    roomScreens.Directory
	metrics *metrics
}

func (d *instrumentedDirectory) GetRooms(ctx context.Context) ([]roomStructs.Room, error) {
	rooms, err := d.next.GetRooms(ctx)
	if err != nil {
		d.metrics.directoryFetches.WithLabelValues("failure").Inc()
		return nil, err
	}
	d.metrics.directoryFetches.WithLabelValues("success").Inc()
	d.metrics.writeRoomsToMetrics(rooms)
	return rooms, nil
}
