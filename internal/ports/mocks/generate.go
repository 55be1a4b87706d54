//go:generate mockgen -source=../order_store.go        -destination=./mock_order_store.go        -package=mocks
//go:generate mockgen -source=../view_cache.go         -destination=./mock_view_cache.go         -package=mocks
//go:generate mockgen -source=../order_importer.go     -destination=./mock_order_importer.go     -package=mocks
//go:generate mockgen -source=../seed_source.go        -destination=./mock_seed_source.go        -package=mocks
//go:generate mockgen -source=../logger.go             -destination=./mock_logger.go             -package=mocks
//go:generate mockgen -source=../message_consumer.go   -destination=./mock_message_consumer.go   -package=mocks
//go:generate mockgen -source=../dashboard_service.go  -destination=./mock_dashboard_service.go  -package=mocks

package mocks
