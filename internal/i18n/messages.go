package i18n

import goi18n "github.com/nicksnyder/go-i18n/v2/i18n"

// Message ids.
const (
	MsgHome             = "home"
	MsgTasks            = "tasks"
	MsgStats            = "stats"
	MsgSettings         = "settings"
	MsgWork             = "work"
	MsgBreak            = "break"
	MsgStart            = "start"
	MsgPause            = "pause"
	MsgReset            = "reset"
	MsgNoTask           = "no_task"
	MsgWorkDone         = "work_done"
	MsgBreakDone        = "break_done"
	MsgTaskAdded        = "task_added"
	MsgTaskUpdated      = "task_updated"
	MsgTaskDeleted      = "task_deleted"
	MsgTaskSelected     = "task_selected"
	MsgCategoryAdded    = "category_added"
	MsgCategoryExists   = "category_exists"
	MsgSettingsSaved    = "settings_saved"
	MsgThemeChanged     = "theme_changed"
	MsgExported         = "exported"
	MsgImported         = "imported"
	MsgNothingToImport  = "nothing_to_import"
	MsgSaveFailed       = "save_failed"
	MsgSound            = "sound"
	MsgVibration        = "vibration"
	MsgOn               = "on"
	MsgOff              = "off"
	MsgAll              = "all"
	MsgDay              = "day"
	MsgWeek             = "week"
	MsgMonth            = "month"
	MsgRange            = "range"
	MsgCategory         = "category"
	MsgPriority         = "priority"
	MsgName             = "name"
	MsgTotal            = "total"
	MsgNoTasks          = "no_tasks"
	MsgNoSessions       = "no_sessions"
	MsgSearch           = "search"
	MsgNewCategory      = "new_category"
	MsgDistribution     = "distribution"
	MsgReportTitle      = "report_title"
	MsgHigh             = "high"
	MsgMedium           = "medium"
	MsgLow              = "low"
	MsgSoundBell        = "sound_bell"
	MsgSoundChime       = "sound_chime"
	MsgSoundDing        = "sound_ding"
	MsgSoundNone        = "sound_none"
	MsgCategoryWork     = "category_work"
	MsgCategoryStudy    = "category_study"
	MsgCategoryLife     = "category_life"
	MsgLightTheme       = "theme_light"
	MsgDarkTheme        = "theme_dark"
	MsgHelpHome         = "help_home"
	MsgHelpTasks        = "help_tasks"
	MsgHelpStats        = "help_stats"
	MsgHelpSettings     = "help_settings"
	MsgHelpForm         = "help_form"
	MsgHelpMenu         = "help_menu"
	MsgSessionsMinutes  = "sessions_minutes"
	MsgConfirmDelete    = "confirm_delete"
	MsgMalformedStorage = "malformed_storage"
)

var english = []*goi18n.Message{
	{ID: MsgHome, Other: "Timer"},
	{ID: MsgTasks, Other: "Tasks"},
	{ID: MsgStats, Other: "Statistics"},
	{ID: MsgSettings, Other: "Settings"},
	{ID: MsgWork, Other: "Focus"},
	{ID: MsgBreak, Other: "Break"},
	{ID: MsgStart, Other: "start"},
	{ID: MsgPause, Other: "pause"},
	{ID: MsgReset, Other: "reset"},
	{ID: MsgNoTask, Other: "No task selected"},
	{ID: MsgWorkDone, Other: "Work finished, take a break"},
	{ID: MsgBreakDone, Other: "Break finished, back to work"},
	{ID: MsgTaskAdded, Other: "Task added"},
	{ID: MsgTaskUpdated, Other: "Task updated"},
	{ID: MsgTaskDeleted, Other: "Task deleted"},
	{ID: MsgTaskSelected, Other: "Current task: {{.Name}}"},
	{ID: MsgCategoryAdded, Other: "Category added"},
	{ID: MsgCategoryExists, Other: "Category already exists"},
	{ID: MsgSettingsSaved, Other: "Settings saved"},
	{ID: MsgThemeChanged, Other: "Theme: {{.Theme}}"},
	{ID: MsgExported, Other: "Exported to {{.Path}}"},
	{ID: MsgImported, Other: "Imported {{.Path}}"},
	{ID: MsgNothingToImport, Other: "No export file found"},
	{ID: MsgSaveFailed, Other: "Save failed: {{.Err}}"},
	{ID: MsgSound, Other: "Sound"},
	{ID: MsgVibration, Other: "Vibration"},
	{ID: MsgOn, Other: "on"},
	{ID: MsgOff, Other: "off"},
	{ID: MsgAll, Other: "All"},
	{ID: MsgDay, Other: "Day"},
	{ID: MsgWeek, Other: "Week"},
	{ID: MsgMonth, Other: "Month"},
	{ID: MsgRange, Other: "Range"},
	{ID: MsgCategory, Other: "Category"},
	{ID: MsgPriority, Other: "Priority"},
	{ID: MsgName, Other: "Name"},
	{ID: MsgTotal, Other: "Total"},
	{ID: MsgNoTasks, Other: "No tasks yet. Press a to add one."},
	{ID: MsgNoSessions, Other: "No sessions in this range"},
	{ID: MsgSearch, Other: "Search"},
	{ID: MsgNewCategory, Other: "New category"},
	{ID: MsgDistribution, Other: "By category"},
	{ID: MsgReportTitle, Other: "Pomodoro report"},
	{ID: MsgHigh, Other: "high"},
	{ID: MsgMedium, Other: "medium"},
	{ID: MsgLow, Other: "low"},
	{ID: MsgSoundBell, Other: "Bell"},
	{ID: MsgSoundChime, Other: "Chime"},
	{ID: MsgSoundDing, Other: "Ding"},
	{ID: MsgSoundNone, Other: "None"},
	{ID: MsgCategoryWork, Other: "Work"},
	{ID: MsgCategoryStudy, Other: "Study"},
	{ID: MsgCategoryLife, Other: "Life"},
	{ID: MsgLightTheme, Other: "light"},
	{ID: MsgDarkTheme, Other: "dark"},
	{ID: MsgHelpHome, Other: "space start/pause  r reset  tab menu  T theme  q quit"},
	{ID: MsgHelpTasks, Other: "/ search  a add  e edit  d delete  enter select  n category  esc back"},
	{ID: MsgHelpStats, Other: "d/w/m range  c category  p pdf  tab menu"},
	{ID: MsgHelpSettings, Other: "s sound  v vibration  x export  i import  tab menu"},
	{ID: MsgHelpForm, Other: "tab next field  left/right change  enter save  esc cancel"},
	{ID: MsgHelpMenu, Other: "up/down move  enter open  1-4 jump  esc close"},
	{ID: MsgSessionsMinutes, Other: "{{.Count}} sessions, {{.Minutes}} min"},
	{ID: MsgConfirmDelete, Other: "Delete {{.Name}}? y/n"},
	{ID: MsgMalformedStorage, Other: "Saved {{.What}} unreadable, defaults in use"},
}

var chinese = []*goi18n.Message{
	{ID: MsgHome, Other: "计时"},
	{ID: MsgTasks, Other: "任务"},
	{ID: MsgStats, Other: "数据统计"},
	{ID: MsgSettings, Other: "设置"},
	{ID: MsgWork, Other: "专注"},
	{ID: MsgBreak, Other: "休息"},
	{ID: MsgStart, Other: "开始"},
	{ID: MsgPause, Other: "暂停"},
	{ID: MsgReset, Other: "重置"},
	{ID: MsgNoTask, Other: "未选择任务"},
	{ID: MsgWorkDone, Other: "工作时间结束，休息一下吧！"},
	{ID: MsgBreakDone, Other: "休息时间结束，开始工作吧！"},
	{ID: MsgTaskAdded, Other: "任务已添加"},
	{ID: MsgTaskUpdated, Other: "任务已更新"},
	{ID: MsgTaskDeleted, Other: "任务已删除"},
	{ID: MsgTaskSelected, Other: "当前任务：{{.Name}}"},
	{ID: MsgCategoryAdded, Other: "分类已添加"},
	{ID: MsgCategoryExists, Other: "分类已存在"},
	{ID: MsgSettingsSaved, Other: "设置已保存"},
	{ID: MsgThemeChanged, Other: "主题：{{.Theme}}"},
	{ID: MsgExported, Other: "已导出到 {{.Path}}"},
	{ID: MsgImported, Other: "已导入 {{.Path}}"},
	{ID: MsgNothingToImport, Other: "未找到导出文件"},
	{ID: MsgSaveFailed, Other: "保存失败：{{.Err}}"},
	{ID: MsgSound, Other: "提示音"},
	{ID: MsgVibration, Other: "振动"},
	{ID: MsgOn, Other: "开"},
	{ID: MsgOff, Other: "关"},
	{ID: MsgAll, Other: "全部"},
	{ID: MsgDay, Other: "日"},
	{ID: MsgWeek, Other: "周"},
	{ID: MsgMonth, Other: "月"},
	{ID: MsgRange, Other: "时间范围"},
	{ID: MsgCategory, Other: "分类"},
	{ID: MsgPriority, Other: "优先级"},
	{ID: MsgName, Other: "名称"},
	{ID: MsgTotal, Other: "合计"},
	{ID: MsgNoTasks, Other: "暂无任务，按 a 添加"},
	{ID: MsgNoSessions, Other: "该时间范围内没有记录"},
	{ID: MsgSearch, Other: "搜索"},
	{ID: MsgNewCategory, Other: "新分类"},
	{ID: MsgDistribution, Other: "分类分布"},
	{ID: MsgReportTitle, Other: "番茄钟报告"},
	{ID: MsgHigh, Other: "高"},
	{ID: MsgMedium, Other: "中"},
	{ID: MsgLow, Other: "低"},
	{ID: MsgSoundBell, Other: "铃声"},
	{ID: MsgSoundChime, Other: "钟声"},
	{ID: MsgSoundDing, Other: "叮咚"},
	{ID: MsgSoundNone, Other: "无"},
	{ID: MsgCategoryWork, Other: "工作"},
	{ID: MsgCategoryStudy, Other: "学习"},
	{ID: MsgCategoryLife, Other: "生活"},
	{ID: MsgLightTheme, Other: "浅色"},
	{ID: MsgDarkTheme, Other: "深色"},
	{ID: MsgHelpHome, Other: "空格 开始/暂停  r 重置  tab 菜单  T 主题  q 退出"},
	{ID: MsgHelpTasks, Other: "/ 搜索  a 添加  e 编辑  d 删除  回车 选择  n 分类  esc 返回"},
	{ID: MsgHelpStats, Other: "d/w/m 范围  c 分类  p 导出PDF  tab 菜单"},
	{ID: MsgHelpSettings, Other: "s 提示音  v 振动  x 导出  i 导入  tab 菜单"},
	{ID: MsgHelpForm, Other: "tab 下一项  左/右 切换  回车 保存  esc 取消"},
	{ID: MsgHelpMenu, Other: "上/下 移动  回车 打开  1-4 跳转  esc 关闭"},
	{ID: MsgSessionsMinutes, Other: "{{.Count}} 个番茄，{{.Minutes}} 分钟"},
	{ID: MsgConfirmDelete, Other: "删除 {{.Name}}？y/n"},
	{ID: MsgMalformedStorage, Other: "{{.What}} 数据无法读取，已使用默认值"},
}
