package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RegistrationsCreated counts accepted registration submissions.
	RegistrationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sansa_registrations_created_total",
		Help: "Number of registrations created.",
	})

	// RegistrationsDeleted counts admin deletions.
	RegistrationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sansa_registrations_deleted_total",
		Help: "Number of registrations deleted by an admin.",
	})

	// LoginFailures counts rejected admin login attempts.
	LoginFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sansa_admin_login_failures_total",
		Help: "Number of failed admin login attempts.",
	})

	// ReceiptsGenerated counts PDF receipts rendered.
	ReceiptsGenerated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "sansa_receipts_generated_total",
		Help: "Number of PDF receipts generated.",
	})
)
