package components

// VelocityComponent 存储实体每帧的位移（像素/帧）
// 敌机和子弹只沿 Y 轴做匀速直线运动，正值向下
type VelocityComponent struct {
	VX float64
	VY float64
}
