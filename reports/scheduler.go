package reports

import (
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"kiosk-server/config"
	"kiosk-server/hub"
)

// Scheduler 每天在配置的时刻生成一次日报。错过触发不补偿，
// 也不和手动生成的报表去重
type Scheduler struct {
	cron      *cron.Cron
	generator *Generator
	hub       *hub.Hub
	cfg       *config.Config
}

func NewScheduler(generator *Generator, h *hub.Hub, cfg *config.Config, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:      cron.New(cron.WithLocation(loc)),
		generator: generator,
		hub:       h,
		cfg:       cfg,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc(s.cfg.ReportSchedule, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) run() {
	log.Printf("Generating scheduled daily report")

	message, err := s.generator.Generate()
	if err != nil {
		log.Printf("Failed to generate daily report: %v", err)
		return
	}

	log.Printf("Daily report generated, send link: %s", WhatsAppURL(s.cfg.ReportPhone, message))

	// 实时通道只推"报表已就绪"和取报表的地址，不推报表正文
	if s.hub.ClientCount() > 0 {
		s.hub.Broadcast(hub.EventDailyReportReady, map[string]string{
			"message": "Daily report is ready!",
			"url":     s.cfg.ReportURL,
		})
	}
}
