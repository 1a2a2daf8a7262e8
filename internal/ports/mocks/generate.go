//go:generate mockgen -source=../cart_gateway.go        -destination=./mock_cart_gateway.go        -package=mocks
//go:generate mockgen -source=../identity_store.go      -destination=./mock_identity_store.go      -package=mocks
//go:generate mockgen -source=../catalog_reader.go      -destination=./mock_catalog_reader.go      -package=mocks
//go:generate mockgen -source=../cart_sync_service.go   -destination=./mock_cart_sync_service.go   -package=mocks
//go:generate mockgen -source=../product_read_service.go -destination=mock_product_read_service.go -package=mocks
//go:generate mockgen -source=../product_cache.go        -destination=./mock_product_cache.go       -package=mocks

package mocks
