// internal/repository/mock_gen.go
package repository

//go:generate mockgen -typed -source=./employee.go -destination=../mocks/mock_employee_repository.go -package=mocks EmployeeRepositoryIface
//go:generate mockgen -typed -source=./department.go -destination=../mocks/mock_department_repository.go -package=mocks DepartmentRepositoryIface
//go:generate mockgen -typed -source=./metric.go -destination=../mocks/mock_metric_repository.go -package=mocks MetricRepositoryIface
//go:generate mockgen -typed -source=./department_aggregate.go -destination=../mocks/mock_department_aggregate_repository.go -package=mocks DepartmentAggregateRepositoryIface
//go:generate mockgen -typed -source=./population.go -destination=../mocks/mock_population_scanner.go -package=mocks PopulationScannerIface
//go:generate mockgen -typed -source=./tool.go -destination=../mocks/mock_tool_repository.go -package=mocks ToolRepositoryIface
//go:generate mockgen -typed -source=./learning.go -destination=../mocks/mock_learning_repository.go -package=mocks LearningRepositoryIface
//go:generate mockgen -typed -source=./gamification.go -destination=../mocks/mock_gamification_repository.go -package=mocks GamificationRepositoryIface
//go:generate mockgen -typed -source=./notification.go -destination=../mocks/mock_notification_repository.go -package=mocks NotificationRepositoryIface
//go:generate mockgen -typed -source=./audit_log.go -destination=../mocks/mock_audit_log_repository.go -package=mocks AuditLogRepositoryIface
