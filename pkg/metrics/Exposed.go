package metrics

var ReconcilePasses = NewCounter("fleetci_reconcile_passes_total", "Total reconciliation passes", []string{"operation"})
var ReconcileActions = NewCounter("fleetci_reconcile_actions_total", "Reconciliation outcomes by bucket", []string{"operation", "bucket"})
var WebhookDeliveries = NewCounter("fleetci_webhook_deliveries_total", "Webhook deliveries by provider and outcome", []string{"provider", "outcome"})
var SchedulerRuns = NewCounter("fleetci_scheduler_runs_total", "Scheduled task executions by outcome", []string{"outcome"})
var RunnersConfigured = NewGauge("fleetci_runners_configured", "Configured replicas per runner group", []string{"group"})
var RunnersRunning = NewGauge("fleetci_runners_running", "Running members per runner group", []string{"group"})
