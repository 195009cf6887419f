package game

import (
	"github.com/sirupsen/logrus"
)

// perfCheckInterval is how many frames pass between performance checks
const perfCheckInterval = 300

func (g *Game) checkPerformance() {
	m := g.monitor.GetCurrentMetrics()
	if m.Frames == 0 || m.Frames%perfCheckInterval != 0 {
		return
	}
	for _, a := range g.monitor.CheckPerformanceAlerts(minFPS) {
		g.log.WithFields(logrus.Fields{
			"type":      a.Type,
			"value":     a.Value,
			"threshold": a.Threshold,
		}).Warn(a.Message)
	}
	g.log.WithField("metrics", m.String()).Debug("frame stats")
}
