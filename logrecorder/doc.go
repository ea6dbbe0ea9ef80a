// Package logrecorder 把收发的帧记录到按日期分目录的 JSON 行文件中。
//
// 文件位于 <Dir>/<2006_01_02>/<Name><20060102_1504>.log，每行一帧。
package logrecorder
