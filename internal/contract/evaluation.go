package contract

import "github.com/alexanderramin/triad/internal/app"

type FactorView = app.FactorView

type Evaluation = app.Evaluation

type ShareResult = app.ShareResult
