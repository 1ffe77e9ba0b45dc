package component

type ErrorPageVModel struct {
	Layout  LayoutVModel
	Message string
}
