package mocks

//go:generate mockgen -destination=./mock_loader.go -package=mocks github.com/pricelens-lab/pricelens/internal/dataset Loader
